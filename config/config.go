package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iamNilotpal/zcodec/internal/core/domain"
)

type Config struct {
	Codec CodecConfig `yaml:"codec"`
}

// Holds codec-specific configuration.
type CodecConfig struct {
	CompressionLevel int    `yaml:"compression_level"`    // DEFLATE level (1-9)
	ChunkSize        uint32 `yaml:"chunk_size"`           // Session read granularity
	MaxAllocSize     uint64 `yaml:"max_alloc_size"`       // Ceiling on one output buffer
	MaxCallSize      uint64 `yaml:"max_call_size"`        // 32-bit single-call transfer limit
	BombMaxRatio     uint64 `yaml:"bomb_max_ratio"`       // Expansion ratio tolerated
	BombActivation   uint64 `yaml:"bomb_activation_size"` // Output floor before the ratio applies
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		Codec: CodecConfig{
			CompressionLevel: 9,
			ChunkSize:        32 * 1024, // 32KB
			MaxAllocSize:     1 << 30,   // 1GB
			MaxCallSize:      math.MaxUint32,
			BombMaxRatio:     25,
			BombActivation:   64 * 1024, // 64KB
		},
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Options converts the file representation into domain options. Zero
// values stay zero so the service fills in its own defaults.
func (c *Config) Options() *domain.Options {
	return &domain.Options{
		Level:     c.Codec.CompressionLevel,
		ChunkSize: c.Codec.ChunkSize,
		Limits: &domain.LimitOptions{
			MaxAllocSize: c.Codec.MaxAllocSize,
			MaxCallSize:  c.Codec.MaxCallSize,
		},
		Bomb: &domain.BombOptions{
			MaxRatio:       c.Codec.BombMaxRatio,
			ActivationSize: c.Codec.BombActivation,
		},
	}
}

func validateConfig(config *Config) error {
	if config.Codec.CompressionLevel < 0 || config.Codec.CompressionLevel > 9 {
		return fmt.Errorf("compression_level must be between 0 and 9")
	}

	if config.Codec.MaxCallSize > math.MaxUint32 {
		return fmt.Errorf("max_call_size must not exceed %d", uint64(math.MaxUint32))
	}

	if config.Codec.BombMaxRatio == 1 {
		return fmt.Errorf("bomb_max_ratio must be at least 2")
	}

	return nil
}
