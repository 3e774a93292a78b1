package ujumbesms

import "time"

const DefaultBaseURL = "https://ujumbesms.co.ke"

// Config holds the account credentials and gateway location. The client keeps its own copy.
type Config struct {
	APIKey  string        `mapstructure:"api_key"`
	Email   string        `mapstructure:"email"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func NewConfig(apiKey, email string) Config {
	return Config{
		APIKey:  apiKey,
		Email:   email,
		BaseURL: DefaultBaseURL,
	}
}

// WithBaseURL returns a copy of the config pointing at another gateway host.
func (c Config) WithBaseURL(baseURL string) Config {
	c.BaseURL = baseURL
	return c
}

// WithTimeout returns a copy of the config with the transport timeout set.
func (c Config) WithTimeout(timeout time.Duration) Config {
	c.Timeout = timeout
	return c
}
