package ports

import (
	"io"

	"github.com/iamNilotpal/zcodec/internal/core/domain"
)

// Encoder is a compressing codec handle bound to an output sink.
// Flush emits a sync point without terminating the stream; Close
// terminates it. Both must be safe to call exactly once per state.
type Encoder interface {
	io.WriteCloser

	// Flush pushes pending compressed bytes to the sink so the stream
	// produced so far is decodable.
	Flush() error
}

// CodecPort constructs framing-specific codec handles. Implementations
// choose the container bits (raw zlib vs gzip tagged) a handle emits or
// expects. A handle is exclusively owned by whichever operation created
// it and must be closed on every exit path.
type CodecPort interface {
	// Method reports which container framing this codec implements.
	Method() domain.CompressionMethod

	// NewEncoder returns a compressing handle writing framed output to w
	// at the given DEFLATE level.
	NewEncoder(w io.Writer, level int) (Encoder, error)

	// NewDecoder returns a decompressing handle reading one framed
	// member from r. It reads the container header eagerly, so header
	// errors surface here rather than on the first read.
	NewDecoder(r io.Reader) (io.ReadCloser, error)
}
