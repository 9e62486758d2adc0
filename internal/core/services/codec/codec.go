// Package codec implements the in-memory compression service: one-shot
// compress/decompress of whole buffers with safe output-buffer growth,
// compression-bomb rejection and multi-member stream support, plus an
// incremental session for callers that supply their own bounded chunks.
// The DEFLATE transform itself lives behind the codec port; this
// package owns only buffer management and safety policy.
package codec

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/iamNilotpal/zcodec/internal/core/domain"
	"github.com/iamNilotpal/zcodec/pkg/buffer"
	zerrors "github.com/iamNilotpal/zcodec/pkg/errors"
	"github.com/iamNilotpal/zcodec/pkg/logger"
	"github.com/iamNilotpal/zcodec/pkg/pool"
)

// Codec is the compression service. It is stateless between calls and
// safe for concurrent use; every operation owns its codec handle and
// buffers exclusively for the duration of the call or session.
type Codec struct {
	options *domain.Options
	log     *zap.SugaredLogger
	pool    *pool.BufferPool // Output accumulators for compressing sessions.
}

// New creates a codec service with the provided options. A nil opts
// selects defaults; a nil log discards diagnostics.
func New(opts *domain.Options, log *zap.SugaredLogger) (*Codec, error) {
	if opts != nil {
		if err := Validate(opts); err != nil {
			return nil, err
		}
	} else {
		opts = &domain.Options{}
	}
	opts = prepareDefaults(opts)

	if log == nil {
		log = logger.NewNop()
	}

	return &Codec{
		options: opts,
		log:     log,
		pool:    pool.NewBufferPool(int(opts.ChunkSize)),
	}, nil
}

func (c *Codec) limits() buffer.Limits {
	return buffer.Limits{
		MaxAlloc: c.options.Limits.MaxAllocSize,
		MaxCall:  c.options.Limits.MaxCallSize,
	}
}

// checkCallSize rejects inputs the codec cannot address in one call.
// Silently truncating would corrupt data, so oversize inputs fail.
func (c *Codec) checkCallSize(operation string, length int) error {
	if uint64(length) > c.options.Limits.MaxCallSize {
		return zerrors.NewCodecError(
			zerrors.CategoryLimit, operation,
			fmt.Errorf("input length %d exceeds the single-call transfer limit %d",
				length, c.options.Limits.MaxCallSize),
		)
	}
	return nil
}
