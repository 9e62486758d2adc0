package codec

import (
	"fmt"
	"math"

	"github.com/iamNilotpal/zcodec/internal/core/domain"
	zerrors "github.com/iamNilotpal/zcodec/pkg/errors"
)

// Validate checks explicitly set options; zero values mean "use the
// default" and are filled in later by prepareDefaults.
func Validate(opts *domain.Options) error {
	if opts.Level != 0 && (opts.Level < 1 || opts.Level > 9) {
		return zerrors.NewValidationError(
			"level", opts.Level,
			fmt.Errorf("compression level must be between 1 and 9, got %d", opts.Level),
		)
	}

	if opts.ChunkSize != 0 {
		if opts.ChunkSize < 4096 {
			return zerrors.NewValidationError(
				"chunkSize", opts.ChunkSize,
				fmt.Errorf("chunk size must be at least 4KB (4096 bytes), got %d bytes", opts.ChunkSize),
			)
		}
		if opts.ChunkSize&(opts.ChunkSize-1) != 0 {
			return zerrors.NewValidationError(
				"chunkSize", opts.ChunkSize,
				fmt.Errorf("chunk size must be a power of 2, got %d bytes", opts.ChunkSize),
			)
		}
	}

	if opts.Limits != nil {
		if opts.Limits.MaxCallSize > math.MaxUint32 {
			return zerrors.NewValidationError(
				"maxCallSize", opts.Limits.MaxCallSize,
				fmt.Errorf("single-call transfer limit cannot exceed %d (32-bit counted), got %d",
					uint64(math.MaxUint32), opts.Limits.MaxCallSize),
			)
		}
		if opts.Limits.MaxAllocSize != 0 && opts.Limits.MaxAllocSize < 1<<20 {
			return zerrors.NewValidationError(
				"maxAllocSize", opts.Limits.MaxAllocSize,
				fmt.Errorf("allocation ceiling must be at least 1MB (1048576 bytes), got %d bytes",
					opts.Limits.MaxAllocSize),
			)
		}
	}

	if opts.Bomb != nil {
		if opts.Bomb.MaxRatio != 0 && opts.Bomb.MaxRatio < 2 {
			return zerrors.NewValidationError(
				"maxRatio", opts.Bomb.MaxRatio,
				fmt.Errorf("bomb ratio must be at least 2, got %d", opts.Bomb.MaxRatio),
			)
		}
		if opts.Bomb.ActivationSize != 0 && opts.Bomb.ActivationSize < 4096 {
			return zerrors.NewValidationError(
				"activationSize", opts.Bomb.ActivationSize,
				fmt.Errorf("bomb activation size must be at least 4KB (4096 bytes), got %d bytes",
					opts.Bomb.ActivationSize),
			)
		}
	}

	return nil
}
