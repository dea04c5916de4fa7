package models

// FieldError is one violated input rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult collects every violated rule of a parsed input.
type ValidationResult struct {
	Errors []FieldError
}

func (v *ValidationResult) Add(field, message string) {
	v.Errors = append(v.Errors, FieldError{Field: field, Message: message})
}

// OK reports whether no rule was violated.
func (v ValidationResult) OK() bool {
	return len(v.Errors) == 0
}

// Messages returns the error messages in the order they were added.
func (v ValidationResult) Messages() []string {
	out := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		out = append(out, e.Message)
	}
	return out
}
