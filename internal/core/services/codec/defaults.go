package codec

import (
	"math"

	"github.com/iamNilotpal/zcodec/internal/core/domain"
)

const (
	// DefaultLevel matches the original behavior of always compressing
	// at the best level.
	DefaultLevel = 9

	// DefaultChunkSize is the per-read granularity of decompressing
	// sessions.
	DefaultChunkSize = 32 * 1024 // 32KB

	// DefaultMaxAllocSize caps any single output buffer.
	DefaultMaxAllocSize = 1 << 30 // 1GB

	// DefaultMaxCallSize is the 32-bit transfer limit DEFLATE-family
	// codecs impose on a single call regardless of host word size.
	DefaultMaxCallSize = math.MaxUint32

	// DefaultMaxRatio and DefaultActivationSize bound the achievable
	// amplification an attacker can cause with a crafted input. Small
	// enough to limit the attack multiplier, large enough that no
	// legitimate document ever compresses harder.
	DefaultMaxRatio       = 25
	DefaultActivationSize = 64 * 1024 // 64KB

	// Starting-size floor for growth buffers. A heuristic only.
	minInitialGuess = 1024

	// Compressed results wasting more capacity than this get trimmed.
	shrinkSlack = 4096
)

func prepareDefaults(opts *domain.Options) *domain.Options {
	if opts.Level == 0 {
		opts.Level = DefaultLevel
	}

	if opts.ChunkSize == 0 {
		opts.ChunkSize = DefaultChunkSize
	}

	if opts.Limits == nil {
		opts.Limits = &domain.LimitOptions{}
	}
	if opts.Limits.MaxAllocSize == 0 {
		opts.Limits.MaxAllocSize = DefaultMaxAllocSize
	}
	if opts.Limits.MaxCallSize == 0 {
		opts.Limits.MaxCallSize = DefaultMaxCallSize
	}

	if opts.Bomb == nil {
		opts.Bomb = &domain.BombOptions{}
	}
	if opts.Bomb.MaxRatio == 0 {
		opts.Bomb.MaxRatio = DefaultMaxRatio
	}
	if opts.Bomb.ActivationSize == 0 {
		opts.Bomb.ActivationSize = DefaultActivationSize
	}

	return opts
}
