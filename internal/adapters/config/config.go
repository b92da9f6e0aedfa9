package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config exposes the application settings through typed accessor sections.
// Values come from a YAML file (CONFIG_PATH, default ./config.yaml) with
// environment overrides (CLUBSPHERE_ prefix, dots replaced by underscores).
type Config struct {
	HTTP      HTTPConfig
	PG        PGConfig
	RedisConf RedisConfig
	Session   SessionConfig
	Logger    LoggerConfig
}

func NewConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", "3000")
	v.SetDefault("http.cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("redis.port", "6379")
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("logger.debug", false)
	v.SetDefault("logger.log_to_file", false)
	v.SetDefault("logger.logs_dir", "logs")

	v.SetEnvPrefix("CLUBSPHERE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := v.GetString("config_path")
	if path == "" {
		path = "config.yaml"
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine: every setting has a default or an env
		// override. SetConfigFile reports absence as an fs.PathError.
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		HTTP:      HTTPConfig{v: v},
		PG:        PGConfig{v: v},
		RedisConf: RedisConfig{v: v},
		Session:   SessionConfig{v: v},
		Logger:    LoggerConfig{v: v},
	}, nil
}

type HTTPConfig struct {
	v *viper.Viper
}

func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.v.GetString("http.host"), c.v.GetString("http.port"))
}

func (c HTTPConfig) CORSOrigins() []string {
	return c.v.GetStringSlice("http.cors_origins")
}

type PGConfig struct {
	v *viper.Viper
}

func (c PGConfig) DSN() string {
	return c.v.GetString("pg.dsn")
}

type RedisConfig struct {
	v *viper.Viper
}

func (c RedisConfig) Host() string {
	return c.v.GetString("redis.host")
}

func (c RedisConfig) Port() string {
	return c.v.GetString("redis.port")
}

func (c RedisConfig) Password() string {
	return c.v.GetString("redis.password")
}

type SessionConfig struct {
	v *viper.Viper
}

func (c SessionConfig) TTL() time.Duration {
	return c.v.GetDuration("session.ttl")
}

type LoggerConfig struct {
	v *viper.Viper
}

func (c LoggerConfig) Debug() bool {
	return c.v.GetBool("logger.debug")
}

func (c LoggerConfig) LogToFile() bool {
	return c.v.GetBool("logger.log_to_file")
}

func (c LoggerConfig) LogsDir() string {
	return c.v.GetString("logger.logs_dir")
}
