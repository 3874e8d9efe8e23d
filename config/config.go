package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// AppConfig holds the ambient process configuration for an amrmerge
// run: where checkpoints live, how to log, and whether tracing is on.
// Mirrors perf-analysis's pkg/config.Config shape (one mapstructure'd
// section per concern, file+env-driven via viper).
type AppConfig struct {
	Run       RunConfig       `mapstructure:"run"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// RunConfig holds the merge run's algorithm knobs as plain values —
// the file/env-loadable counterpart to MergeOptions, converted via
// ToMergeOptions.
type RunConfig struct {
	Threshold             float64 `mapstructure:"threshold"`
	RelativeThreshold     float64 `mapstructure:"relative_threshold"`
	UseRelativeThreshold  bool    `mapstructure:"use_relative_threshold"`
	Negate                bool    `mapstructure:"negate"`
	PreservePlainVertices bool    `mapstructure:"preserve_plain_vertices"`
}

// ToMergeOptions resolves r into MergeOptions, applying extra as
// additional functional options (e.g. WithSpecial, which has no flat
// config-file representation).
func (r RunConfig) ToMergeOptions(extra ...MergeOption) *MergeOptions {
	opts := []MergeOption{
		WithNegate(r.Negate),
		WithPreservePlainVertices(r.PreservePlainVertices),
	}
	if r.UseRelativeThreshold {
		opts = append(opts, WithRelativeThreshold(r.RelativeThreshold))
	} else {
		opts = append(opts, WithThreshold(r.Threshold))
	}
	opts = append(opts, extra...)
	return NewMergeOptions(opts...)
}

// StorageConfig selects and configures the checkpoint.Store backend.
type StorageConfig struct {
	Type      string `mapstructure:"type"` // "local" or "cos"
	LocalPath string `mapstructure:"local_path"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	SecretID  string `mapstructure:"secret_id"`
	SecretKey string `mapstructure:"secret_key"`
	Domain    string `mapstructure:"domain"`
	Scheme    string `mapstructure:"scheme"`
}

// LogConfig selects logx's verbosity and destination.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Output string `mapstructure:"output"` // "stdout", "stderr", or a file path
}

// TelemetryConfig mirrors telemetry.Config's file/env-loadable fields.
type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
	Endpoint    string `mapstructure:"endpoint"`
	Sampler     string `mapstructure:"sampler"`
	SamplerArg  string `mapstructure:"sampler_arg"`
}

// Load reads configuration from configPath (or the standard search
// locations when empty), falling back to defaults on a missing file.
func Load(configPath string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("amrmerge")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/amrmerge")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Println("config file not found, using defaults")
		} else if os.IsNotExist(err) {
			fmt.Printf("config file %s not found, using defaults\n", configPath)
		} else {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// LoadFromReader loads configuration from raw content, for tests.
func LoadFromReader(configType string, content []byte) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}
	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("run.threshold", 0.0)
	v.SetDefault("run.negate", false)
	v.SetDefault("run.preserve_plain_vertices", false)

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_path", "./checkpoints")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.output", "stderr")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "amrmerge")
	v.SetDefault("telemetry.sampler", "parentbased_always_on")
}

// Validate checks the loaded configuration for internal consistency.
func (c *AppConfig) Validate() error {
	switch c.Storage.Type {
	case "local", "cos":
	default:
		return fmt.Errorf("unsupported storage type: %s", c.Storage.Type)
	}
	if c.Storage.Type == "cos" {
		if c.Storage.Bucket == "" || c.Storage.Region == "" {
			return fmt.Errorf("storage.bucket and storage.region are required for cos storage")
		}
	}
	return nil
}
