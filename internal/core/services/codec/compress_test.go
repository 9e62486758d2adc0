package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	adapters "github.com/iamNilotpal/zcodec/internal/adapters/codec"
	"github.com/iamNilotpal/zcodec/internal/core/domain"
	zerrors "github.com/iamNilotpal/zcodec/pkg/errors"
)

func TestRoundTrip(t *testing.T) {
	c := newTestCodec(t)

	payloads := map[string][]byte{
		"empty":       {},
		"single":      []byte("x"),
		"small text":  []byte("hello, hello, hello says the codec"),
		"random 256K": randomBytes(t, 256*1024),
	}

	for _, method := range testMethods() {
		for name, payload := range payloads {
			t.Run(method.String()+"/"+name, func(t *testing.T) {
				compressed, err := c.Compress(payload, method)
				require.NoError(t, err)
				require.NotEmpty(t, compressed)

				plain, err := c.Decompress(compressed, method, true, zapcore.WarnLevel)
				require.NoError(t, err)
				require.Equal(t, payload, plain)
			})
		}
	}
}

func TestCompressedOutputIsSniffable(t *testing.T) {
	c := newTestCodec(t)
	payload := []byte("framing should be recognizable from the header")

	for _, method := range testMethods() {
		t.Run(method.String(), func(t *testing.T) {
			compressed, err := c.Compress(payload, method)
			require.NoError(t, err)
			require.Equal(t, method, adapters.DetectMethod(compressed))
		})
	}
}

func TestCompressRejectsUnknownMethod(t *testing.T) {
	c := newTestCodec(t)

	_, err := c.Compress([]byte("data"), domain.MethodUnknown)
	require.Error(t, err)
	require.True(t, zerrors.IsCategory(err, zerrors.CategoryUnsupported))
}

func TestCompressFlagsPathologicalRatio(t *testing.T) {
	c := newTestCodec(t)

	// 4MB of zeros shrinks far past the policy ratio; the original
	// treats that as a corruption signal, not success.
	_, err := c.Compress(make([]byte, 4*1024*1024), domain.MethodZlib)
	require.Error(t, err)
	require.True(t, zerrors.IsCategory(err, zerrors.CategoryBomb))
}

func TestSmallPayloadNeverTripsThePolicy(t *testing.T) {
	c := newTestCodec(t)

	// Well under the activation floor in both directions.
	payload := []byte("aaaaaaaaaa")
	compressed, err := c.Compress(payload, domain.MethodZlib)
	require.NoError(t, err)

	plain, err := c.Decompress(compressed, domain.MethodZlib, true, zapcore.WarnLevel)
	require.NoError(t, err)
	require.Equal(t, payload, plain)
}

func TestCompressGuessPastCeilingStillSucceeds(t *testing.T) {
	// 2.5MB of input makes the len/2 size guess overshoot a 1MB
	// ceiling, but the output (~800KB: the random head barely shrinks,
	// the zero tail collapses) fits under it.
	c, err := New(&domain.Options{
		Limits: &domain.LimitOptions{MaxAllocSize: 1 << 20},
	}, nil)
	require.NoError(t, err)

	payload := append(randomBytes(t, 800*1024), make([]byte, 1700*1024)...)
	compressed, err := c.Compress(payload, domain.MethodZlib)
	require.NoError(t, err)
	require.Less(t, len(compressed), 1<<20)
}

func TestCompressResultIsTightlySized(t *testing.T) {
	c := newTestCodec(t)

	// Highly compressible but below the bomb activation floor: output
	// lands far under the initial guess, so the trim must kick in.
	payload := bytes.Repeat([]byte("ab"), 16*1024) // 32KB
	compressed, err := c.Compress(payload, domain.MethodZlib)
	require.NoError(t, err)
	require.LessOrEqual(t, cap(compressed), len(compressed)+shrinkSlack)
}
