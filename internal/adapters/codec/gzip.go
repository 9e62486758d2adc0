package codec

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/iamNilotpal/zcodec/internal/core/domain"
	"github.com/iamNilotpal/zcodec/internal/core/ports"
)

// GzipCodec implements CodecPort with the gzip container (RFC 1952).
// Callers must gate construction behind the capability probe; ForMethod
// does this.
type GzipCodec struct{}

func NewGzipCodec() GzipCodec { return GzipCodec{} }

func (GzipCodec) Method() domain.CompressionMethod { return domain.MethodGzip }

func (GzipCodec) NewEncoder(w io.Writer, level int) (ports.Encoder, error) {
	zw, err := gzip.NewWriterLevel(w, level)
	if err != nil {
		return nil, errors.Wrap(err, "gzip: new writer")
	}
	return zw, nil
}

func (GzipCodec) NewDecoder(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "gzip: new reader")
	}
	// One decoder handles exactly one member; callers that want
	// concatenated members loop and re-initialize themselves.
	zr.Multistream(false)
	return zr, nil
}
