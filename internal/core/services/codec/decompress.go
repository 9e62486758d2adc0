package codec

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	adapters "github.com/iamNilotpal/zcodec/internal/adapters/codec"
	"github.com/iamNilotpal/zcodec/internal/core/domain"
	"github.com/iamNilotpal/zcodec/pkg/buffer"
	zerrors "github.com/iamNilotpal/zcodec/pkg/errors"
)

// Decompress decompresses zero or more concatenated compressed members
// of the same framing to completion.
//
// When completeOnly is true, truncated input is a failure; otherwise as
// much as possible is decompressed and a prefix of the plaintext is
// returned. Truncated or corrupt inputs are logged at warnLevel.
//
// Before every buffer growth the bomb detector is consulted with the
// original input length and the would-be capacity, so peak memory is
// bounded, not just the final output size. On success the result is
// tightened to the produced length with a NUL sentinel byte beyond it.
func (c *Codec) Decompress(
	in []byte, method domain.CompressionMethod, completeOnly bool, warnLevel zapcore.Level,
) ([]byte, error) {
	const op = "decompress"

	if err := c.checkCallSize(op, len(in)); err != nil {
		return nil, err
	}
	port, err := adapters.ForMethod(method)
	if err != nil {
		return nil, err
	}

	// Guess 2x expansion, floor 1024, capped at the limits. Heuristic
	// only; an input whose real output fits must never fail on the
	// guess alone.
	limits := c.limits()
	guess := uint64(len(in)) * 2
	if guess < minInitialGuess {
		guess = minInitialGuess
	}

	guard := func(next uint64) error {
		if isCompressionBomb(c.options.Bomb, uint64(len(in)), next) {
			c.log.Warnw("input looks like a compression bomb",
				"method", method.String(), "in", len(in), "projected", next)
			return zerrors.NewCodecError(
				zerrors.CategoryBomb, op,
				fmt.Errorf("expanding %d bytes past %d exceeds the expansion policy", len(in), next),
			)
		}
		return nil
	}
	out, err := buffer.NewGrowth(limits.Clamp(guess), limits, guard)
	if err != nil {
		return nil, err
	}

	// One buffered reader is shared across members so the bytes of a
	// following member survive the previous decoder's teardown.
	src := bufio.NewReader(bytes.NewReader(in))

	// Teardown anomalies don't invalidate already-produced data; they
	// are collected and logged once at the end.
	var teardown error

	dec, err := port.NewDecoder(src)
	if err != nil {
		if isTruncated(err) && !completeOnly {
			return out.Terminated(), nil
		}
		return nil, c.inflateError(op, err, warnLevel)
	}

	for {
		if out.Full() {
			if gerr := out.Grow(); gerr != nil {
				dec.Close()
				return nil, gerr
			}
		}

		n, rerr := dec.Read(out.Free())
		out.Advance(n)
		if rerr == nil {
			continue
		}

		if rerr == io.EOF {
			// End of this member.
			teardown = multierr.Append(teardown, dec.Close())
			if _, perr := src.Peek(1); perr == io.EOF {
				if teardown != nil {
					c.log.Warnw("codec handle did not release cleanly", "error", teardown)
				}
				return out.Terminated(), nil
			}

			// More members may follow; re-initialize with the same
			// framing. Trailing garbage fails here, strictly.
			dec, err = port.NewDecoder(src)
			if err != nil {
				if isTruncated(err) && !completeOnly {
					return out.Terminated(), nil
				}
				return nil, c.inflateError(op, err, warnLevel)
			}
			continue
		}

		dec.Close()
		if isTruncated(rerr) && !completeOnly {
			// Caller tolerates truncated input; hand back the prefix.
			return out.Terminated(), nil
		}
		return nil, c.inflateError(op, rerr, warnLevel)
	}
}

// isTruncated reports whether err means the input ran out mid-stream,
// as opposed to being structurally invalid.
func isTruncated(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF)
}

// inflateError classifies a decoder failure. Truncation is only
// distinguishable from corruption at this level; both are protocol
// diagnostics, distinct from resource and size failures.
func (c *Codec) inflateError(op string, err error, warnLevel zapcore.Level) error {
	if isTruncated(err) {
		c.log.Logw(warnLevel, "truncated compressed data", "error", err.Error())
		return zerrors.NewCodecError(zerrors.CategoryTruncated, op, err)
	}
	c.log.Logw(warnLevel, "corrupt compressed data", "error", err.Error())
	return zerrors.NewCodecError(zerrors.CategoryCorrupt, op, err)
}
