package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// InsecureDefaultSecret is the development fallback used when no session
// secret is configured. Running with it in production is unsafe; main logs
// a warning when it is in effect.
const InsecureDefaultSecret = "dev-secret-change-me"

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	Session struct {
		Secret     string
		Issuer     string
		TTLMinutes int
	}
	Admin struct {
		Email    string
		Password string
	}
	Seed struct {
		Demo bool
	}
}

// SessionSecretInsecure reports whether the process is running on the
// development fallback secret.
func (c Config) SessionSecretInsecure() bool {
	return c.Session.Secret == InsecureDefaultSecret
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	loadDotEnv()

	v := viper.New()
	v.SetEnvPrefix("PROCOMMUNITY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:5000")
	v.SetDefault("session.secret", InsecureDefaultSecret)
	v.SetDefault("session.issuer", "procommunity")
	v.SetDefault("session.ttlminutes", 1440)
	v.SetDefault("admin.email", "admin@procommunity.com")
	v.SetDefault("admin.password", "admin123")
	v.SetDefault("seed.demo", true)

	// The original deployment configures the signing secret through the
	// unprefixed SESSION_SECRET variable; keep honoring it.
	_ = v.BindEnv("session.secret", "PROCOMMUNITY_SESSION_SECRET", "SESSION_SECRET")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func loadDotEnv() {
	file, err := os.Open(".env")
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		partsIndex := strings.Index(line, "=")
		if partsIndex <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:partsIndex])
		value := strings.TrimSpace(line[partsIndex+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}

		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, value)
		}
	}
}
