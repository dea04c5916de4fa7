package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/idgateway/internal/flagx"
	"github.com/dmitrijs2005/idgateway/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "5s" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP string `json:"endpoint_addr_http"`
	DatabaseDSN      string `json:"database_dsn"`

	SessionSecret      string         `json:"session_secret"`
	SessionTTL         timex.Duration `json:"session_ttl"`
	ServiceTokenSecret string         `json:"service_token_secret"`

	RetryMigrations bool           `json:"retry_migrations"`
	RetryDelay      timex.Duration `json:"retry_delay"`

	ReferenceDataMode   string `json:"reference_data_mode"`
	ReferenceDataSource string `json:"reference_data_source"`

	S3RootUser     string `json:"s3_root_user"`
	S3RootPassword string `json:"s3_root_password"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`

	RedisAddr         string         `json:"redis_addr"`
	RedisPassword     string         `json:"redis_password"`
	RedisDB           int            `json:"redis_db"`
	PendingRequestTTL timex.Duration `json:"pending_request_ttl"`

	AllowLocalLogin    bool `json:"allow_local_login"`
	AllowRememberLogin bool `json:"allow_remember_login"`

	PasswordMinLength              int  `json:"password_min_length"`
	PasswordRequireDigit           bool `json:"password_require_digit"`
	PasswordRequireUppercase       bool `json:"password_require_uppercase"`
	PasswordRequireNonAlphanumeric bool `json:"password_require_non_alphanumeric"`

	GoogleClientID     string `json:"google_client_id"`
	GoogleClientSecret string `json:"google_client_secret"`
	GoogleRedirectURL  string `json:"google_redirect_url"`

	OTLPEndpoint string `json:"otlp_endpoint"`
}

func (j *JsonConfig) from(c *Config) {
	j.EndpointAddrGRPC = c.EndpointAddrGRPC
	j.EndpointAddrHTTP = c.EndpointAddrHTTP
	j.DatabaseDSN = c.DatabaseDSN
	j.SessionSecret = c.SessionSecret
	j.SessionTTL = timex.Duration{Duration: c.SessionTTL}
	j.ServiceTokenSecret = c.ServiceTokenSecret
	j.RetryMigrations = c.RetryMigrations
	j.RetryDelay = timex.Duration{Duration: c.RetryDelay}
	j.ReferenceDataMode = c.ReferenceDataMode
	j.ReferenceDataSource = c.ReferenceDataSource
	j.S3RootUser = c.S3RootUser
	j.S3RootPassword = c.S3RootPassword
	j.S3Region = c.S3Region
	j.S3BaseEndpoint = c.S3BaseEndpoint
	j.RedisAddr = c.RedisAddr
	j.RedisPassword = c.RedisPassword
	j.RedisDB = c.RedisDB
	j.PendingRequestTTL = timex.Duration{Duration: c.PendingRequestTTL}
	j.AllowLocalLogin = c.AllowLocalLogin
	j.AllowRememberLogin = c.AllowRememberLogin
	j.PasswordMinLength = c.PasswordMinLength
	j.PasswordRequireDigit = c.PasswordRequireDigit
	j.PasswordRequireUppercase = c.PasswordRequireUppercase
	j.PasswordRequireNonAlphanumeric = c.PasswordRequireNonAlphanumeric
	j.GoogleClientID = c.GoogleClientID
	j.GoogleClientSecret = c.GoogleClientSecret
	j.GoogleRedirectURL = c.GoogleRedirectURL
	j.OTLPEndpoint = c.OTLPEndpoint
}

func (j *JsonConfig) to(c *Config) {
	c.EndpointAddrGRPC = j.EndpointAddrGRPC
	c.EndpointAddrHTTP = j.EndpointAddrHTTP
	c.DatabaseDSN = j.DatabaseDSN
	c.SessionSecret = j.SessionSecret
	c.SessionTTL = time.Duration(j.SessionTTL.Duration)
	c.ServiceTokenSecret = j.ServiceTokenSecret
	c.RetryMigrations = j.RetryMigrations
	c.RetryDelay = time.Duration(j.RetryDelay.Duration)
	c.ReferenceDataMode = j.ReferenceDataMode
	c.ReferenceDataSource = j.ReferenceDataSource
	c.S3RootUser = j.S3RootUser
	c.S3RootPassword = j.S3RootPassword
	c.S3Region = j.S3Region
	c.S3BaseEndpoint = j.S3BaseEndpoint
	c.RedisAddr = j.RedisAddr
	c.RedisPassword = j.RedisPassword
	c.RedisDB = j.RedisDB
	c.PendingRequestTTL = time.Duration(j.PendingRequestTTL.Duration)
	c.AllowLocalLogin = j.AllowLocalLogin
	c.AllowRememberLogin = j.AllowRememberLogin
	c.PasswordMinLength = j.PasswordMinLength
	c.PasswordRequireDigit = j.PasswordRequireDigit
	c.PasswordRequireUppercase = j.PasswordRequireUppercase
	c.PasswordRequireNonAlphanumeric = j.PasswordRequireNonAlphanumeric
	c.GoogleClientID = j.GoogleClientID
	c.GoogleClientSecret = j.GoogleClientSecret
	c.GoogleRedirectURL = j.GoogleRedirectURL
	c.OTLPEndpoint = j.OTLPEndpoint
}

// parseJson overlays the file named by -c/-config onto config. Keys absent
// from the file keep their current value. An unreadable file or invalid
// JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFilePath()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
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
