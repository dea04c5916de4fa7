// Package client talks to a running gateway on behalf of idpctl.
//
// GRPCClient covers the internal membership and profile RPCs plus the
// standard health service. Membership calls carry a short-lived service
// token minted from the shared secret. HTTPClient covers local account
// registration through the public login API.
//
// Transport failures are mapped to ErrUnavailable and ErrUnauthorized so
// callers can match them with errors.Is.
package client
