// internal/handlers/weather-lookup/config.go
package weatherlookup

type Config struct {
	// APIKey is the provider credential. Empty means the deployment is
	// misconfigured; lookups fail with 500 before any outbound call.
	APIKey string
}

func LoadConfig() *Config {
	return &Config{}
}
