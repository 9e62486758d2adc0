package codec

import (
	"fmt"

	adapters "github.com/iamNilotpal/zcodec/internal/adapters/codec"
	"github.com/iamNilotpal/zcodec/internal/core/domain"
	"github.com/iamNilotpal/zcodec/pkg/buffer"
	zerrors "github.com/iamNilotpal/zcodec/pkg/errors"
)

// Compress compresses in to completion with the given framing and
// returns a freshly sized result buffer. The codec handle is torn down
// on every path; no partial output is ever returned.
func (c *Codec) Compress(in []byte, method domain.CompressionMethod) ([]byte, error) {
	const op = "compress"

	if err := c.checkCallSize(op, len(in)); err != nil {
		return nil, err
	}
	port, err := adapters.ForMethod(method)
	if err != nil {
		return nil, err
	}

	// Guess 50% compression, capped at the limits; growth-on-demand
	// corrects bad guesses.
	limits := c.limits()
	guess := uint64(len(in)) / 2
	if guess < minInitialGuess {
		guess = minInitialGuess
	}
	out, err := buffer.NewGrowth(limits.Clamp(guess), limits, nil)
	if err != nil {
		return nil, err
	}

	enc, err := port.NewEncoder(out, c.options.Level)
	if err != nil {
		return nil, zerrors.NewCodecError(zerrors.CategoryInit, op, err)
	}

	_, werr := enc.Write(in)
	cerr := enc.Close()
	if werr != nil {
		return nil, c.deflateError(op, werr)
	}
	if cerr != nil {
		return nil, c.deflateError(op, cerr)
	}

	result := out.Trimmed(shrinkSlack)

	// The detector runs in the compression direction too: an input that
	// shrank by a wildly disproportionate factor signals corruption or
	// misconfiguration, not success.
	if isCompressionBomb(c.options.Bomb, uint64(len(result)), uint64(len(in))) {
		c.log.Warnw("suspiciously high compression factor",
			"method", method.String(), "in", len(in), "out", len(result))
		return nil, zerrors.NewCodecError(
			zerrors.CategoryBomb, op,
			fmt.Errorf("compressing %d bytes to %d exceeds the expansion policy", len(in), len(result)),
		)
	}

	return result, nil
}

// deflateError passes growth-engine failures (limit, bomb) through with
// their category intact and classifies everything else as a codec
// internal failure.
func (c *Codec) deflateError(op string, err error) error {
	if zerrors.AsCodecError(err) != nil {
		return err
	}
	return zerrors.NewCodecError(zerrors.CategoryInit, op, err)
}
