package client

import "context"

// Admin is the set of gateway operations the CLI drives.
type Admin interface {
	Close() error
	UpdateMembership(ctx context.Context, userID string, grant bool) (bool, string, error)
	Claims(ctx context.Context, subjectID string) ([]Claim, error)
	IsActive(ctx context.Context, subjectID string) (bool, error)
	Health(ctx context.Context) (string, error)
}

// Registrar creates local accounts.
type Registrar interface {
	Register(ctx context.Context, email, password, confirm string) ([]string, error)
}

// Claim is a single profile claim as returned by the gateway.
type Claim struct {
	Type  string
	Value string
}
