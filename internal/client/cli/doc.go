// Package cli implements idpctl, an interactive shell for gateway operators.
// It registers local accounts over the public API and manages membership,
// profile lookups and health checks over the internal gRPC endpoint.
package cli
