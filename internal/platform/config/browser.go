package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
)

// EnvPrefix prefixes environment variables read by the browser CLI (ENTRIES_API_URL, ...).
const EnvPrefix = "ENTRIES"

// BrowserConfig configures the entries browser CLI.
type BrowserConfig struct {
	APIURL          *url.URL
	APIToken        string
	CompanyID       string
	PageSize        int
	DateRangePolicy domain.DateRangePolicy
	RequestTimeout  time.Duration
	LogLevel        string
	LogFormat       string
}

// SetBrowserDefaults registers defaults and environment lookups on v.
func SetBrowserDefaults(v *viper.Viper) {
	v.SetDefault("api_url", "http://localhost:8080")
	v.SetDefault("page_size", 20)
	v.SetDefault("date_range_policy", string(domain.DateRangePassThrough))
	v.SetDefault("request_timeout", "15s")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// LoadBrowserConfig reads and validates the browser configuration from v.
// Flags are expected to be bound to v already.
func LoadBrowserConfig(v *viper.Viper) (*BrowserConfig, error) {
	rawURL := v.GetString("api_url")
	apiURL, err := url.Parse(rawURL)
	if err != nil || apiURL.Scheme == "" || apiURL.Host == "" {
		return nil, fmt.Errorf("invalid api_url %q", rawURL)
	}

	cfg := &BrowserConfig{
		APIURL:          apiURL,
		APIToken:        v.GetString("api_token"),
		CompanyID:       v.GetString("company_id"),
		PageSize:        v.GetInt("page_size"),
		DateRangePolicy: domain.DateRangePolicy(v.GetString("date_range_policy")),
		RequestTimeout:  v.GetDuration("request_timeout"),
		LogLevel:        v.GetString("logging.level"),
		LogFormat:       v.GetString("logging.format"),
	}

	if cfg.CompanyID == "" {
		return nil, fmt.Errorf("company_id is required")
	}
	if cfg.APIToken == "" {
		return nil, fmt.Errorf("api_token is required")
	}
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("page_size must be positive, got %d", cfg.PageSize)
	}
	if !cfg.DateRangePolicy.Valid() {
		return nil, fmt.Errorf("invalid date_range_policy %q", cfg.DateRangePolicy)
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("request_timeout must be positive")
	}
	return cfg, nil
}
