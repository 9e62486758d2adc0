package codec

import (
	"encoding/binary"

	"github.com/iamNilotpal/zcodec/internal/core/domain"
)

const (
	gzipMagic0 = 0x1f
	gzipMagic1 = 0x8b

	// Low nibble of the zlib CMF byte for the deflate method.
	zlibDeflateCM = 8
)

// DetectMethod guesses which container framing wraps in by inspecting
// its header bytes. A Zlib or Gzip verdict is a hint for which framing
// to attempt, never proof the stream is well-formed.
//
// Policy: at least 3 bytes starting with the gzip magic means gzip;
// else a first byte whose low nibble is the deflate method code, with
// the big-endian uint16 of the first two bytes divisible by 31 (the
// zlib header checksum property), means zlib.
func DetectMethod(in []byte) domain.CompressionMethod {
	if len(in) > 2 && in[0] == gzipMagic0 && in[1] == gzipMagic1 {
		return domain.MethodGzip
	}
	if len(in) > 2 && in[0]&0x0f == zlibDeflateCM &&
		binary.BigEndian.Uint16(in[:2])%31 == 0 {
		return domain.MethodZlib
	}
	return domain.MethodUnknown
}
