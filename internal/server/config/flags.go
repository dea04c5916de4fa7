package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/idgateway/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     gRPC bind address (e.g., ":50051")
//	-w string     HTTP bind address (e.g., ":8080")
//	-d string     PostgreSQL DSN
//	-s string     session token secret
//	-k string     service token secret for the membership RPC
//	-r bool       retry bootstrap until it succeeds
//	-m string     reference data mode: replace, additive or none
//	-f string     reference data source: file path or s3://bucket/key
//	-redis string Redis address
//	-otlp string  OTLP/HTTP trace endpoint
//
// os.Args is filtered with flagx.FilterArgs first so -c/-config and flags of
// other layers do not trip the flag set.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-d", "-s", "-k", "-r", "-m", "-f", "-redis", "-otlp"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.EndpointAddrHTTP, "w", config.EndpointAddrHTTP, "address and port to run HTTP server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SessionSecret, "s", config.SessionSecret, "session secret")
	fs.StringVar(&config.ServiceTokenSecret, "k", config.ServiceTokenSecret, "service token secret")
	fs.BoolVar(&config.RetryMigrations, "r", config.RetryMigrations, "retry bootstrap on failure")
	fs.StringVar(&config.ReferenceDataMode, "m", config.ReferenceDataMode, "reference data mode")
	fs.StringVar(&config.ReferenceDataSource, "f", config.ReferenceDataSource, "reference data source")
	fs.StringVar(&config.RedisAddr, "redis", config.RedisAddr, "redis address")
	fs.StringVar(&config.OTLPEndpoint, "otlp", config.OTLPEndpoint, "OTLP trace endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
