// Package config loads geocontour settings from config.yaml, GEOCONTOUR_*
// environment variables, an optional .env file and command-line flags.
package config

import (
	"math"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/geocontour/contour"
	"github.com/katalvlaran/geocontour/core"
	"github.com/katalvlaran/geocontour/encode"
)

// Config holds the full application configuration.
type Config struct {
	Contour  ContourConfig  `yaml:"contour" mapstructure:"contour"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
	Postgres PostgresConfig `yaml:"postgres" mapstructure:"postgres"`
	Redis    RedisConfig    `yaml:"redis" mapstructure:"redis"`
}

// ContourConfig configures interpolation and tracing.
type ContourConfig struct {
	Method        string  `yaml:"method" mapstructure:"method"`
	Smoothing     float64 `yaml:"smoothing" mapstructure:"smoothing"`
	Concurrency   int     `yaml:"concurrency" mapstructure:"concurrency"`
	MaxIterations int     `yaml:"max_iterations" mapstructure:"max_iterations"`
}

// OutputConfig configures encoding. An empty Path means stdout.
type OutputConfig struct {
	Precision int    `yaml:"precision" mapstructure:"precision"`
	Format    string `yaml:"format" mapstructure:"format"`
	Path      string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// PostgresConfig configures the PostGIS sink. An empty DSN disables it.
type PostgresConfig struct {
	DSN    string `yaml:"dsn" mapstructure:"dsn"`
	Schema string `yaml:"schema" mapstructure:"schema"`
	Table  string `yaml:"table" mapstructure:"table"`
}

// RedisConfig configures the result cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `yaml:"addr" mapstructure:"addr"`
	Password string        `yaml:"password" mapstructure:"password"`
	DB       int           `yaml:"db" mapstructure:"db"`
	TTL      time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// FlagKeys maps configuration keys to the command-line flags that override them.
var FlagKeys = map[string]string{
	"contour.method":         "method",
	"contour.smoothing":      "smoothing",
	"contour.concurrency":    "concurrency",
	"contour.max_iterations": "max-iterations",
	"output.precision":       "precision",
	"output.format":          "format",
	"output.path":            "out",
	"log.level":              "log-level",
	"log.format":             "log-format",
	"postgres.dsn":           "postgres-dsn",
	"redis.addr":             "redis-addr",
}

// Load reads configuration from .env, file, environment and flags, in
// increasing priority. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	// Existing environment wins over .env; a missing file is fine.
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("GEOCONTOUR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("contour.method", "cosine")
	v.SetDefault("contour.smoothing", 0.999)
	v.SetDefault("contour.concurrency", 0)
	v.SetDefault("contour.max_iterations", 10000)
	v.SetDefault("output.precision", encode.DefaultPrecision)
	v.SetDefault("output.format", "geojson")
	v.SetDefault("output.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("postgres.schema", "public")
	v.SetDefault("postgres.table", "contours")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "1h")

	if flags != nil {
		for key, name := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, eris.Wrapf(err, "config: bind flag --%s", name)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate rejects settings the contour and encode packages cannot honour.
func (c *Config) Validate() error {
	if _, err := core.ParseMethod(c.Contour.Method); err != nil {
		return eris.Wrap(err, "config: contour.method")
	}
	if s := c.Contour.Smoothing; math.IsNaN(s) || s < 0 || s > 1 {
		return eris.Errorf("config: contour.smoothing %g outside [0,1]", s)
	}
	if c.Contour.Concurrency < 0 {
		return eris.Errorf("config: contour.concurrency %d < 0", c.Contour.Concurrency)
	}
	if c.Contour.MaxIterations < 1 {
		return eris.Errorf("config: contour.max_iterations %d < 1", c.Contour.MaxIterations)
	}
	if c.Output.Precision < 0 {
		return eris.Wrapf(encode.ErrPrecision, "config: output.precision %d", c.Output.Precision)
	}
	if _, err := encode.ParseFormat(c.Output.Format); err != nil {
		return eris.Wrap(err, "config: output.format")
	}
	return nil
}

// Encoding returns the parsed output format.
func (c OutputConfig) Encoding() (encode.Format, error) {
	return encode.ParseFormat(c.Format)
}

// Options converts the contour settings into orchestrator options.
// Call Validate first: invalid values make the option constructors panic.
func (c ContourConfig) Options(log *zap.Logger) []contour.Option {
	m, _ := core.ParseMethod(c.Method)
	opts := []contour.Option{
		contour.WithMethod(m),
		contour.WithSmoothing(c.Smoothing),
		contour.WithMaxIterations(c.MaxIterations),
	}
	if c.Concurrency > 0 {
		opts = append(opts, contour.WithConcurrency(c.Concurrency))
	}
	if log != nil {
		opts = append(opts, contour.WithLogger(log))
	}
	return opts
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
