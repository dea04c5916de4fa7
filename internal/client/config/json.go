package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/idgateway/internal/flagx"
	"github.com/dmitrijs2005/idgateway/internal/timex"
)

// JsonConfig is the on-disk shape of the CLI configuration file.
type JsonConfig struct {
	GRPCAddr           string         `json:"grpc_addr"`
	HTTPBaseURL        string         `json:"http_base_url"`
	ServiceTokenSecret string         `json:"service_token_secret"`
	CallerName         string         `json:"caller_name"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

func (j *JsonConfig) from(c *Config) {
	j.GRPCAddr = c.GRPCAddr
	j.HTTPBaseURL = c.HTTPBaseURL
	j.ServiceTokenSecret = c.ServiceTokenSecret
	j.CallerName = c.CallerName
	j.RequestTimeout = timex.Duration{Duration: c.RequestTimeout}
}

func (j *JsonConfig) to(c *Config) {
	c.GRPCAddr = j.GRPCAddr
	c.HTTPBaseURL = j.HTTPBaseURL
	c.ServiceTokenSecret = j.ServiceTokenSecret
	c.CallerName = j.CallerName
	c.RequestTimeout = time.Duration(j.RequestTimeout.Duration)
}

// parseJson overlays the file named by -c/-config onto config. Missing keys
// keep their current value; unreadable files and invalid JSON panic.
func parseJson(config *Config) {
	path := flagx.ConfigFilePath()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	c.from(config)

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.to(config)
}
