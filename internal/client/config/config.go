package config

import "time"

// Config holds runtime settings for the admin CLI.
//
// Fields:
//   - GRPCAddr: host:port of the gateway's internal gRPC endpoint.
//   - HTTPBaseURL: base URL of the gateway's login API, used by register.
//   - ServiceTokenSecret: secret shared with the gateway; empty sends no token.
//   - CallerName: subject of the service tokens minted for membership calls.
//   - RequestTimeout: deadline applied to every remote call.
type Config struct {
	GRPCAddr           string        `env:"GRPC_ADDR"`
	HTTPBaseURL        string        `env:"HTTP_BASE_URL"`
	ServiceTokenSecret string        `env:"SERVICE_TOKEN_SECRET"`
	CallerName         string        `env:"CALLER_NAME"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with values suitable for a local gateway.
func (c *Config) LoadDefaults() {
	c.GRPCAddr = "127.0.0.1:50051"
	c.HTTPBaseURL = "http://127.0.0.1:8080"
	c.ServiceTokenSecret = ""
	c.CallerName = "idpctl"
	c.RequestTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays JSON,
// environment and flag values in that order.
func LoadConfig() *Config {
	config := &Config{}
	config.LoadDefaults()
	parseJson(config)
	parseEnv(config)
	parseFlags(config)
	return config
}
