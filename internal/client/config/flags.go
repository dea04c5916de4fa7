package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/idgateway/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   gateway gRPC address
//	-w string   gateway HTTP base URL
//	-k string   service token secret
//	-n string   caller name placed in service tokens
//	-t int      request timeout in seconds
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-k", "-n", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.GRPCAddr, "a", config.GRPCAddr, "gateway gRPC address")
	fs.StringVar(&config.HTTPBaseURL, "w", config.HTTPBaseURL, "gateway HTTP base URL")
	fs.StringVar(&config.ServiceTokenSecret, "k", config.ServiceTokenSecret, "service token secret")
	fs.StringVar(&config.CallerName, "n", config.CallerName, "caller name")
	timeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*timeout) * time.Second
}
