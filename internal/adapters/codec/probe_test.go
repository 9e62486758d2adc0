package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsGzipSupportedIsIdempotent(t *testing.T) {
	first := IsGzipSupported()
	for i := 0; i < 10; i++ {
		require.Equal(t, first, IsGzipSupported())
	}
	require.NotEmpty(t, CodecVersion())
}

func TestVersionAtLeast(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"v1.17.11", true},
		{"v1.2.0", true},
		{"v1.2", true},
		{"v1.1.9", false},
		{"v1.0.3", false},
		{"v0.9.1", false},
		{"v2.0.0", true},
		{"v1.3.2-0.20230101000000-abcdef123456", true},
		{"v1.1-rc1", false},
		{"(devel)", true},
		{"garbage", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			require.Equal(t, tt.want, versionAtLeast(tt.version, 1, 2))
		})
	}
}
