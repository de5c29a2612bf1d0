package satpam

import "github.com/satpam-id/satpam/pkg/config"

// Config holds resolver configuration.
type Config struct {
	// CookieName is the cookie read and written by the resolver (default: "satpam")
	CookieName string `env:"SATPAM_COOKIE_NAME" envDefault:"satpam"`

	// URLCheck is the query/fragment parameter consulted when no cookie is
	// present. Empty disables URL checking.
	URLCheck string `env:"SATPAM_URL_CHECK" envDefault:""`

	// AutoSetCookie writes a successfully resolved token back to the response
	// during Verify.
	AutoSetCookie bool `env:"SATPAM_AUTO_SET_COOKIE" envDefault:"true"`
}

// DefaultConfig returns the default resolver configuration.
func DefaultConfig() Config {
	return Config{
		CookieName:    "satpam",
		URLCheck:      "",
		AutoSetCookie: true,
	}
}

// LoadConfig loads resolver configuration from the environment (and an
// optional .env file) according to the Config field tags.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
