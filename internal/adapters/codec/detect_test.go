package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/zcodec/internal/core/domain"
)

func TestDetectMethod(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want domain.CompressionMethod
	}{
		{"gzip magic", []byte{0x1f, 0x8b, 0x08}, domain.MethodGzip},
		{"zlib default header", []byte{0x78, 0x9c, 0x00}, domain.MethodZlib},
		{"zlib best compression header", []byte{0x78, 0xda, 0x00}, domain.MethodZlib},
		{"too short for gzip", []byte{0x1f, 0x8b}, domain.MethodUnknown},
		{"too short for zlib", []byte{0x78, 0x9c}, domain.MethodUnknown},
		{"empty", nil, domain.MethodUnknown},
		{"deflate nibble but bad checksum", []byte{0x78, 0x9d, 0x00}, domain.MethodUnknown},
		{"plain text", []byte("hello world"), domain.MethodUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DetectMethod(tt.in))
		})
	}
}
