package models

// MembershipResult is the outcome reported back to the billing caller.
type MembershipResult struct {
	Success bool
	Message string
}
