package models

// Claim types emitted into tokens.
const (
	ClaimSubject    = "sub"
	ClaimName       = "name"
	ClaimEmail      = "email"
	ClaimRole       = "role"
	ClaimGivenName  = "given_name"
	ClaimFamilyName = "family_name"
	ClaimWebSite    = "website"
)

// Claim is a typed attribute of a subject.
type Claim struct {
	Type  string
	Value string
}
