package domain

// CompressionMethod selects the container framing wrapped around a
// DEFLATE stream. It is chosen once by the caller (or suggested by the
// format sniffer) and never changes for the lifetime of an operation.
type CompressionMethod int

const (
	// MethodUnknown means the framing could not be determined.
	// Operations reject it; only the sniffer ever reports it.
	MethodUnknown CompressionMethod = iota

	// MethodZlib is raw zlib framing (RFC 1950).
	MethodZlib

	// MethodGzip is the gzip container (RFC 1952). Only usable when the
	// linked codec build supports it, see the capability probe.
	MethodGzip
)

// String returns the string representation of the compression method.
func (m CompressionMethod) String() string {
	switch m {
	case MethodZlib:
		return "zlib"
	case MethodGzip:
		return "gzip"
	default:
		return "unknown"
	}
}
