// Package devkit provides in process capability providers so the host channel runs without a real SDK
package devkit

import (
	"os"
	"path/filepath"
	"time"

	perr "snapbridge/internal/platform/errors"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Login outcomes accepted by DEVKIT_LOGIN
const (
	LoginSuccess  = "success"
	LoginDeclined = "declined"
	LoginError    = "error"
)

// Settings tune the dev providers
type Settings struct {
	Enabled bool `env:"DEVKIT_ENABLED" envDefault:"true"`
	// Fixture is an optional YAML file overriding profile, ids and failures
	Fixture string `env:"DEVKIT_FIXTURE"`
	// Latency delays every provider callback
	Latency time.Duration `env:"DEVKIT_LATENCY" envDefault:"0s"`
	// Duplicate fires every callback twice
	Duplicate bool   `env:"DEVKIT_DUPLICATE_CALLBACKS"`
	Login     string `env:"DEVKIT_LOGIN" envDefault:"success"`
	// LoggedIn is the session state before any login
	LoggedIn  bool `env:"DEVKIT_LOGGED_IN"`
	Installed bool `env:"DEVKIT_INSTALLED" envDefault:"true"`
	// SharerError makes sharing client construction fail with this message
	SharerError string `env:"DEVKIT_SHARER_ERROR"`
}

// LoadSettings reads DEVKIT_* from the environment
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return s, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "parse devkit env")
	}
	switch s.Login {
	case LoginSuccess, LoginDeclined, LoginError:
	default:
		return s, perr.WithField(perr.InvalidArgf("unknown login outcome %q", s.Login), "DEVKIT_LOGIN")
	}
	return s, nil
}

// Fixture overrides canned provider data
type Fixture struct {
	Profile struct {
		ExternalID  string `yaml:"externalId"`
		DisplayName string `yaml:"displayName"`
		Selfie      string `yaml:"selfie"`
		// Missing drops data.me from profile results
		Missing bool `yaml:"missing"`
	} `yaml:"profile"`
	Verification struct {
		PhoneID  string `yaml:"phoneId"`
		VerifyID string `yaml:"verifyId"`
	} `yaml:"verification"`
	// Failures maps login, profile, verify and share to an injected error message
	Failures map[string]string `yaml:"failures"`
}

// DefaultFixture is used when no fixture file is configured
func DefaultFixture() Fixture {
	var f Fixture
	f.Profile.ExternalID = "dev-external-id"
	f.Profile.DisplayName = "Dev User"
	f.Profile.Selfie = "https://example.invalid/bitmoji/selfie.png"
	return f
}

// LoadFixture reads a YAML fixture over DefaultFixture
func LoadFixture(path string) (Fixture, error) {
	f := DefaultFixture()
	if path == "" {
		return f, nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return f, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read devkit fixture %s", path)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "parse devkit fixture %s", path)
	}
	return f, nil
}
