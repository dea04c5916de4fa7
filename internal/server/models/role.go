package models

// Canonical role names. Every role referenced by code must be in CanonicalRoles
// so the bootstrap sequencer creates it before anything assigns it.
const (
	RoleMember     = "Member"
	RoleUser       = "User"
	RolePayingUser = "PayingUser"
)

// DefaultRole is assigned to newly registered and externally provisioned users.
const DefaultRole = RoleUser

// CanonicalRoles is the fixed role set converged at startup.
var CanonicalRoles = []string{RoleMember, RoleUser, RolePayingUser}
