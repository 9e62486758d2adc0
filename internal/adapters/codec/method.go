package codec

import (
	"fmt"

	"github.com/iamNilotpal/zcodec/internal/core/domain"
	"github.com/iamNilotpal/zcodec/internal/core/ports"
	zerrors "github.com/iamNilotpal/zcodec/pkg/errors"
)

// ForMethod returns the codec for the requested framing. Gzip is gated
// behind the capability probe so unsupported requests fail fast, before
// any resource is allocated. MethodUnknown is an explicit caller error,
// not an implicit fallback to zlib.
func ForMethod(method domain.CompressionMethod) (ports.CodecPort, error) {
	switch method {
	case domain.MethodZlib:
		return NewZlibCodec(), nil

	case domain.MethodGzip:
		if !IsGzipSupported() {
			return nil, zerrors.NewCodecError(
				zerrors.CategoryUnsupported, "codec select",
				fmt.Errorf("gzip framing needs %s >= v%d.%d, linked version is %s",
					codecModulePath, minGzipMajor, minGzipMinor, CodecVersion()),
			)
		}
		return NewGzipCodec(), nil

	default:
		return nil, zerrors.NewCodecError(
			zerrors.CategoryUnsupported, "codec select",
			fmt.Errorf("cannot operate on method %q", method),
		)
	}
}
