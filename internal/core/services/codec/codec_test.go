package codec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	adapters "github.com/iamNilotpal/zcodec/internal/adapters/codec"
	"github.com/iamNilotpal/zcodec/internal/core/domain"
	"github.com/iamNilotpal/zcodec/pkg/logger"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := New(nil, logger.NewNop())
	require.NoError(t, err)
	return c
}

// testMethods returns the framings the linked codec build can do.
func testMethods() []domain.CompressionMethod {
	methods := []domain.CompressionMethod{domain.MethodZlib}
	if adapters.IsGzipSupported() {
		methods = append(methods, domain.MethodGzip)
	}
	return methods
}

// randomBytes is deliberately incompressible so round trips never
// brush against the expansion policy.
func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	buf := make([]byte, n)
	rng := rand.New(rand.NewSource(42))
	_, err := rng.Read(buf)
	require.NoError(t, err)
	return buf
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	_, err := New(&domain.Options{Level: 12}, nil)
	require.Error(t, err)

	_, err = New(&domain.Options{ChunkSize: 5000}, nil)
	require.Error(t, err)

	_, err = New(&domain.Options{Bomb: &domain.BombOptions{MaxRatio: 1}}, nil)
	require.Error(t, err)
}

func TestNewFillsDefaults(t *testing.T) {
	c, err := New(nil, nil)
	require.NoError(t, err)
	require.Equal(t, DefaultLevel, c.options.Level)
	require.EqualValues(t, DefaultChunkSize, c.options.ChunkSize)
	require.EqualValues(t, DefaultMaxRatio, c.options.Bomb.MaxRatio)
	require.EqualValues(t, DefaultActivationSize, c.options.Bomb.ActivationSize)
	require.EqualValues(t, DefaultMaxAllocSize, c.options.Limits.MaxAllocSize)
	require.EqualValues(t, DefaultMaxCallSize, c.options.Limits.MaxCallSize)
}
