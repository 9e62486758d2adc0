package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zcodec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
codec:
  compression_level: 6
  chunk_size: 16384
  max_alloc_size: 268435456
  bomb_max_ratio: 50
  bomb_activation_size: 131072
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 6, cfg.Codec.CompressionLevel)
	require.EqualValues(t, 16384, cfg.Codec.ChunkSize)
	require.EqualValues(t, 268435456, cfg.Codec.MaxAllocSize)
	require.EqualValues(t, 50, cfg.Codec.BombMaxRatio)
	require.EqualValues(t, 131072, cfg.Codec.BombActivation)

	opts := cfg.Options()
	require.Equal(t, 6, opts.Level)
	require.EqualValues(t, 16384, opts.ChunkSize)
	require.EqualValues(t, 50, opts.Bomb.MaxRatio)
}

func TestLoadConfigPartialFileLeavesZeroValues(t *testing.T) {
	path := writeConfigFile(t, `
codec:
  compression_level: 3
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Codec.CompressionLevel)
	require.Zero(t, cfg.Codec.ChunkSize)
	require.Zero(t, cfg.Codec.BombMaxRatio)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	path := writeConfigFile(t, `
codec:
  compression_level: 42
`)
	_, err := LoadConfig(path)
	require.Error(t, err)

	path = writeConfigFile(t, `
codec:
  bomb_max_ratio: 1
`)
	_, err = LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "codec: [not: a, mapping")
	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, 9, cfg.Codec.CompressionLevel)
	require.EqualValues(t, 32*1024, cfg.Codec.ChunkSize)
	require.EqualValues(t, 25, cfg.Codec.BombMaxRatio)
	require.EqualValues(t, 64*1024, cfg.Codec.BombActivation)
}
