// Package buffer implements the growable output buffer shared by the
// one-shot transforms. Capacity doubles on demand; the write position
// is tracked as a byte offset, never a pointer, and is re-applied to
// the fresh allocation after every reallocation.
package buffer

import (
	"fmt"
	"math"

	zerrors "github.com/iamNilotpal/zcodec/pkg/errors"
)

// Limits bounds how far a Growth buffer may expand.
type Limits struct {
	// MaxAlloc is the process-wide ceiling on a single allocation.
	MaxAlloc uint64
	// MaxCall is the largest length a single codec call may address
	// (32-bit counted transfers).
	MaxCall uint64
}

// Clamp caps an initial capacity guess at the configured limits. Size
// guesses are heuristics; a guess past a limit means "start at the
// limit", while an actual growth past it fails.
func (l Limits) Clamp(n uint64) uint64 {
	if l.MaxCall != 0 && n > l.MaxCall {
		n = l.MaxCall
	}
	if l.MaxAlloc != 0 && n > l.MaxAlloc {
		n = l.MaxAlloc
	}
	return n
}

// GuardFunc is consulted with the would-be new capacity before every
// growth allocation. Returning an error aborts the growth before any
// memory is reserved, bounding peak use rather than just final size.
type GuardFunc func(next uint64) error

// Growth is an owned, resizable byte region plus a write cursor.
// Invariants: cursor <= capacity, and capacity is monotonically
// non-decreasing for the lifetime of one operation.
type Growth struct {
	buf    []byte
	cursor int
	limits Limits
	guard  GuardFunc
}

// NewGrowth allocates a buffer with the given starting capacity. The
// initial size is only a heuristic; correctness never depends on it,
// growth-on-demand does. The initial capacity is held to the same
// limits as every later growth step.
func NewGrowth(initial uint64, limits Limits, guard GuardFunc) (*Growth, error) {
	if err := checkCapacity(initial, limits); err != nil {
		return nil, err
	}
	return &Growth{
		buf:    make([]byte, initial),
		limits: limits,
		guard:  guard,
	}, nil
}

func checkCapacity(next uint64, limits Limits) error {
	if next > uint64(math.MaxInt) {
		return zerrors.NewCodecError(
			zerrors.CategoryLimit, "buffer grow",
			fmt.Errorf("capacity %d overflows the platform int size", next),
		)
	}
	if limits.MaxCall != 0 && next > limits.MaxCall {
		return zerrors.NewCodecError(
			zerrors.CategoryLimit, "buffer grow",
			fmt.Errorf("capacity %d exceeds the single-call transfer limit %d", next, limits.MaxCall),
		)
	}
	if limits.MaxAlloc != 0 && next > limits.MaxAlloc {
		return zerrors.NewCodecError(
			zerrors.CategoryLimit, "buffer grow",
			fmt.Errorf("capacity %d exceeds the allocation ceiling %d", next, limits.MaxAlloc),
		)
	}
	return nil
}

// Grow doubles the capacity, preserving the bytes written so far. It
// fails without allocating when doubling would overflow, cross a limit,
// or be rejected by the guard.
func (g *Growth) Grow() error {
	old := uint64(cap(g.buf))
	next := old * 2
	if next < old {
		return zerrors.NewCodecError(
			zerrors.CategoryLimit, "buffer grow",
			fmt.Errorf("doubling capacity %d overflowed", old),
		)
	}
	if err := checkCapacity(next, g.limits); err != nil {
		return err
	}
	if g.guard != nil {
		if err := g.guard(next); err != nil {
			return err
		}
	}

	// Reallocation moves the region, so the write position survives as
	// an offset and the slice is rebuilt around it.
	fresh := make([]byte, next)
	copy(fresh, g.buf[:g.cursor])
	g.buf = fresh
	return nil
}

// Free returns the unwritten tail of the buffer for the codec to fill.
func (g *Growth) Free() []byte { return g.buf[g.cursor:] }

// Advance moves the write cursor after the codec filled n bytes.
func (g *Growth) Advance(n int) { g.cursor += n }

// Full reports whether no free space remains.
func (g *Growth) Full() bool { return g.cursor == len(g.buf) }

// Len returns the number of bytes produced so far.
func (g *Growth) Len() int { return g.cursor }

// Cap returns the current capacity.
func (g *Growth) Cap() int { return len(g.buf) }

// Write appends p, doubling capacity as needed. It implements io.Writer
// so a compressing codec can stream straight into the growth engine.
func (g *Growth) Write(p []byte) (int, error) {
	for g.cursor+len(p) > len(g.buf) {
		if err := g.Grow(); err != nil {
			return 0, err
		}
	}
	copy(g.buf[g.cursor:], p)
	g.cursor += len(p)
	return len(p), nil
}

// Trimmed returns the produced bytes, reallocating to the exact length
// when more than slack bytes of capacity would otherwise be wasted.
func (g *Growth) Trimmed(slack int) []byte {
	if len(g.buf)-g.cursor > slack {
		exact := make([]byte, g.cursor)
		copy(exact, g.buf[:g.cursor])
		g.buf = exact
	}
	return g.buf[:g.cursor]
}

// Terminated returns the produced bytes tightened to their exact
// length, with one NUL sentinel byte kept beyond the reported length so
// the result can double as a null-terminated byte string.
func (g *Growth) Terminated() []byte {
	if len(g.buf) != g.cursor+1 {
		exact := make([]byte, g.cursor+1)
		copy(exact, g.buf[:g.cursor])
		g.buf = exact
	}
	g.buf[g.cursor] = 0
	return g.buf[:g.cursor]
}
