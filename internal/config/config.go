package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. REPOPICK_DEBUG.
const EnvPrefix = "REPOPICK"

// Keys shared by viper, environment variables and command-line flags.
const (
	KeyDebug        = "debug"
	KeyNoCache      = "no-cache"
	KeyDelay        = "delay"
	KeyPerPage      = "per-page"
	KeyDiscardStale = "discard-stale"
	KeyAPIURL       = "api-url"
	KeyLogFile      = "log-file"
)

// Defaults.
const (
	DefaultDelay   = 400 * time.Millisecond
	DefaultPerPage = 5
	DefaultAPIURL  = "https://api.github.com/"
	maxPerPage     = 100
	minDelay       = time.Millisecond
)

// Config holds application configuration.
type Config struct {
	DebugMode    bool
	NoCache      bool
	Delay        time.Duration
	PerPage      int
	DiscardStale bool
	APIURL       string
	LogFile      string
}

// NewViper returns a viper instance reading REPOPICK_* variables, with every
// default registered.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyNoCache, false)
	v.SetDefault(KeyDelay, DefaultDelay)
	v.SetDefault(KeyPerPage, DefaultPerPage)
	v.SetDefault(KeyDiscardStale, false)
	v.SetDefault(KeyAPIURL, DefaultAPIURL)
	v.SetDefault(KeyLogFile, filepath.Join(os.TempDir(), "gh-repopick.log"))
	return v
}

// FromViper reads a Config from v.
func FromViper(v *viper.Viper) Config {
	return Config{
		DebugMode:    v.GetBool(KeyDebug),
		NoCache:      v.GetBool(KeyNoCache),
		Delay:        delayFromViper(v),
		PerPage:      v.GetInt(KeyPerPage),
		DiscardStale: v.GetBool(KeyDiscardStale),
		APIURL:       v.GetString(KeyAPIURL),
		LogFile:      v.GetString(KeyLogFile),
	}
}

// FromEnvironment creates a Config from environment variables and defaults.
func FromEnvironment() Config {
	return FromViper(NewViper())
}

// delayFromViper reads the delay, taking a bare number such as
// REPOPICK_DELAY=400 as milliseconds.
func delayFromViper(v *viper.Viper) time.Duration {
	if ms, err := strconv.ParseInt(strings.TrimSpace(v.GetString(KeyDelay)), 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return v.GetDuration(KeyDelay)
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Delay < minDelay {
		return fmt.Errorf("delay must be at least %s, got %s", minDelay, c.Delay)
	}
	if c.PerPage < 1 || c.PerPage > maxPerPage {
		return fmt.Errorf("per-page must be between 1 and %d, got %d", maxPerPage, c.PerPage)
	}
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("parsing api-url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api-url must be http or https, got %q", c.APIURL)
	}
	return nil
}
