// Package config loads application settings from an optional YAML file
// overlaid with environment variables.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	infradb "parcel_backend/internal/platform/db"
)

// EnvConfigFile names the environment variable pointing at a YAML config file.
const EnvConfigFile = "CONFIG_FILE"

const (
	defaultPort           = 8080
	defaultDriver         = infradb.DriverMySQL
	defaultConnectTimeout = 60 * time.Second
	defaultCacheTTL       = 5 * time.Minute
	defaultTokenTTL       = 24 * time.Hour
)

// Config is the full runtime configuration, loaded once at start-up.
type Config struct {
	HTTP  HTTPConfig  `koanf:"http"`
	DB    DBConfig    `koanf:"db"`
	Redis RedisConfig `koanf:"redis"`
	Auth  AuthConfig  `koanf:"auth"`
	Log   LogConfig   `koanf:"log"`
}

// HTTPConfig controls the listener and CORS.
type HTTPConfig struct {
	Port int `koanf:"port"`
	// SessionRateLimit caps /auth/session calls per minute. Zero disables the cap.
	SessionRateLimit int `koanf:"session_rate_limit"`
	// CORSOrigins lists browser origins allowed to call the API. Comma separated in env.
	CORSOrigins []string `koanf:"cors_origins"`
}

// DBConfig selects the storage driver and its connection settings.
type DBConfig struct {
	Driver         string        `koanf:"driver"`
	User           string        `koanf:"user"`
	Password       string        `koanf:"password"`
	Name           string        `koanf:"name"`
	Host           string        `koanf:"host"`
	Port           string        `koanf:"port"`
	Instance       string        `koanf:"instance"`
	Path           string        `koanf:"path"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
	RunMigrations  bool          `koanf:"run_migrations"`
}

// RedisConfig is optional; an empty Host disables the cache.
type RedisConfig struct {
	Host     string        `koanf:"host"`
	Port     string        `koanf:"port"`
	Password string        `koanf:"password"`
	TTL      time.Duration `koanf:"ttl"`
}

// AuthConfig holds the session signing secret and token lifetime.
type AuthConfig struct {
	JWTSecret string        `koanf:"jwt_secret"`
	TokenTTL  time.Duration `koanf:"token_ttl"`
	// OwnerOpenID is promoted to admin on first login when no role is supplied.
	OwnerOpenID  string `koanf:"owner_open_id"`
	ServiceToken string `koanf:"service_token"`
}

// LogConfig sets log level and format.
type LogConfig struct {
	Level  string `koanf:"level"`
	Pretty bool   `koanf:"pretty"`
	Debug  bool   `koanf:"debug"`
}

// sections are the top-level keys an env var may address, e.g. DB_HOST -> db.host.
var sections = map[string]bool{"http": true, "db": true, "redis": true, "auth": true, "log": true}

// aliases keep the historical variable names working.
var aliases = map[string]string{
	"PORT":                     "http.port",
	"JWT_SECRET":               "auth.jwt_secret",
	"OWNER_OPEN_ID":            "auth.owner_open_id",
	"INSTANCE_CONNECTION_NAME": "db.instance",
	"RUN_MIGRATIONS":           "db.run_migrations",
}

// Load reads path (if non-empty) and then the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read config file %s failed", path)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{TransformFunc: envKey}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(Config)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			TagName:          "koanf",
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config failed")
	}

	cfg.applyDefaults()
	return cfg, nil
}

// FromEnv loads the file named by CONFIG_FILE, if any, plus the environment.
func FromEnv() (*Config, error) {
	return Load(os.Getenv(EnvConfigFile))
}

// envKey maps SECTION_FIELD_NAME to section.field_name and drops unrelated variables.
func envKey(k, v string) (string, any) {
	if alias, ok := aliases[k]; ok {
		return alias, v
	}
	section, field, ok := strings.Cut(strings.ToLower(k), "_")
	if !ok || field == "" || !sections[section] {
		return "", nil
	}
	return section + "." + field, v
}

func (c *Config) applyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = defaultPort
	}
	if strings.TrimSpace(c.DB.Driver) == "" {
		c.DB.Driver = defaultDriver
	}
	if c.DB.ConnectTimeout <= 0 {
		c.DB.ConnectTimeout = defaultConnectTimeout
	}
	if c.Redis.TTL <= 0 {
		c.Redis.TTL = defaultCacheTTL
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = defaultTokenTTL
	}
}

// Database converts the db section into the storage layer's config.
func (c *Config) Database() infradb.Config {
	return infradb.Config{
		Driver:         c.DB.Driver,
		User:           c.DB.User,
		Password:       c.DB.Password,
		Name:           c.DB.Name,
		Host:           c.DB.Host,
		Port:           c.DB.Port,
		InstanceName:   c.DB.Instance,
		Path:           c.DB.Path,
		ConnectTimeout: c.DB.ConnectTimeout,
		RunMigrations:  c.DB.RunMigrations,
		Debug:          c.Log.Debug,
	}
}

// RedisAddr returns host:port, or "" when the cache is not configured.
func (c *Config) RedisAddr() string {
	if c.Redis.Host == "" {
		return ""
	}
	port := c.Redis.Port
	if port == "" {
		port = "6379"
	}
	return c.Redis.Host + ":" + port
}
