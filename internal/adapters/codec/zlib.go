// Package codec adapts the klauspost/compress zlib and gzip
// implementations to the codec port, and hosts the capability probe and
// the format sniffer. Everything here is stateless; handles returned by
// the ports carry all working state.
package codec

import (
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"

	"github.com/iamNilotpal/zcodec/internal/core/domain"
	"github.com/iamNilotpal/zcodec/internal/core/ports"
)

// ZlibCodec implements CodecPort with raw zlib framing (RFC 1950).
type ZlibCodec struct{}

func NewZlibCodec() ZlibCodec { return ZlibCodec{} }

func (ZlibCodec) Method() domain.CompressionMethod { return domain.MethodZlib }

func (ZlibCodec) NewEncoder(w io.Writer, level int) (ports.Encoder, error) {
	zw, err := zlib.NewWriterLevel(w, level)
	if err != nil {
		return nil, errors.Wrap(err, "zlib: new writer")
	}
	return zw, nil
}

func (ZlibCodec) NewDecoder(r io.Reader) (io.ReadCloser, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "zlib: new reader")
	}
	return zr, nil
}
