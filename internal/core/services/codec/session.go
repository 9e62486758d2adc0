package codec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	adapters "github.com/iamNilotpal/zcodec/internal/adapters/codec"
	"github.com/iamNilotpal/zcodec/internal/core/domain"
	"github.com/iamNilotpal/zcodec/internal/core/ports"
	zerrors "github.com/iamNilotpal/zcodec/pkg/errors"
	"github.com/iamNilotpal/zcodec/pkg/pool"
	"github.com/iamNilotpal/zcodec/pkg/system"
)

type sessionState int

const (
	stateActive sessionState = iota
	stateDone
	stateFailed
	stateClosed
)

var errSessionClosed = errors.New("session is closed")

// Session is an in-progress incremental (de)compression driven by
// repeated bounded-chunk Process calls. A session is exclusively owned
// by one logical sequence of calls; it is not safe for concurrent use.
// Callers that want concurrency create independent sessions.
//
// Unlike the one-shot transforms there is no implicit buffer growth:
// each call advances the codec by at most the bytes available in the
// supplied input and output slices.
type Session struct {
	method   domain.CompressionMethod
	compress bool

	state sessionState
	err   error

	// Lifetime totals. No single chunk reveals the true expansion
	// ratio, so these feed the bomb detector across chunk boundaries.
	bytesIn  uint64
	bytesOut uint64

	log     *zap.SugaredLogger
	bomb    *domain.BombOptions
	maxCall uint64

	// Compressing side: synchronous encoder draining into a pooled
	// accumulator.
	enc      ports.Encoder
	acc      *bytes.Buffer
	accPool  *pool.BufferPool
	finished bool

	// Decompressing side: decoder goroutine fed through feed, results
	// arriving on outCh. decErr and teardown are written by the loop
	// before outCh/loopDone close and read only after, so they need no
	// lock.
	feed       *inflateFeed
	outCh      chan []byte
	loopDone   chan struct{}
	quit       chan struct{}
	quitOnce   sync.Once
	starving   bool   // Decoder has requested input it hasn't received.
	dataClosed bool   // No more input will ever be fed.
	pending    []byte // Decoded bytes that didn't fit the caller's out slice.
	decErr     error
	teardown   error
}

// NewSession creates an incremental session. If compress is true the
// session deflates, otherwise it inflates. The returned session must be
// freed with Close; it is never freed automatically, even after an
// error, so callers can inspect its state first.
func (c *Codec) NewSession(compress bool, method domain.CompressionMethod) (*Session, error) {
	port, err := adapters.ForMethod(method)
	if err != nil {
		return nil, err
	}

	s := &Session{
		method:   method,
		compress: compress,
		log:      c.log,
		bomb:     c.options.Bomb,
		maxCall:  c.options.Limits.MaxCallSize,
	}

	if compress {
		s.acc = c.pool.Get()
		s.accPool = c.pool
		enc, err := port.NewEncoder(s.acc, c.options.Level)
		if err != nil {
			c.pool.Put(s.acc)
			return nil, zerrors.NewCodecError(zerrors.CategoryInit, "new session", err)
		}
		s.enc = enc
		return s, nil
	}

	s.quit = make(chan struct{})
	s.feed = newInflateFeed(s.quit)
	s.outCh = make(chan []byte)
	s.loopDone = make(chan struct{})
	go s.inflateLoop(port, int(c.options.ChunkSize))
	return s, nil
}

// Method reports the session's container framing.
func (s *Session) Method() domain.CompressionMethod { return s.method }

// BytesIn returns the total input bytes accepted over the session's
// lifetime. For a decompressing session bytes count when they are
// handed to the decoder, so input past the end of the stream stays
// counted even though the decoder never decodes it.
func (s *Session) BytesIn() uint64 { return s.bytesIn }

// BytesOut returns the total output bytes produced over the session's
// lifetime.
func (s *Session) BytesOut() uint64 { return s.bytesOut }

// Err returns the error behind the last StepErr result, if any.
func (s *Session) Err() error { return s.err }

// Process advances the session, reading up to len(in) bytes and
// writing up to len(out) bytes. finish asks the codec to flush and
// terminate the stream rather than expect more input later.
//
// read counts bytes the session accepted, not bytes decoded: a
// decompressing session owns exactly one stream, and input past the
// stream's end is accepted along with the chunk that contains it,
// then ignored.
//
// It returns how many input bytes were consumed, how many output bytes
// were produced, and the resulting step state. On StepOutputFull the
// caller drains or replaces out and calls again with the input that was
// not consumed; on StepOK it supplies more input; StepDone is terminal.
func (s *Session) Process(out, in []byte, finish bool) (read, wrote int, result domain.StepResult) {
	switch s.state {
	case stateDone:
		return 0, 0, domain.StepDone
	case stateFailed:
		return 0, 0, domain.StepErr
	case stateClosed:
		s.err = zerrors.NewCodecError(zerrors.CategoryInit, "process", errSessionClosed)
		return 0, 0, domain.StepErr
	}

	if uint64(len(in)) > s.maxCall || uint64(len(out)) > s.maxCall {
		return s.fail(0, 0, zerrors.CategoryLimit, "process",
			fmt.Errorf("slice lengths %d/%d exceed the single-call transfer limit %d",
				len(in), len(out), s.maxCall))
	}

	if s.compress {
		return s.processDeflate(out, in, finish)
	}
	return s.processInflate(out, in, finish)
}

func (s *Session) fail(read, wrote int, category zerrors.Category, op string, err error) (int, int, domain.StepResult) {
	s.state = stateFailed
	s.err = zerrors.NewCodecError(category, op, err)
	return read, wrote, domain.StepErr
}

func (s *Session) processDeflate(out, in []byte, finish bool) (int, int, domain.StepResult) {
	read := 0

	if len(in) > 0 && !s.finished {
		n, err := s.enc.Write(in)
		read = n
		s.bytesIn += uint64(n)
		if err != nil {
			return s.fail(read, 0, zerrors.CategoryInit, "deflate write", err)
		}
	}

	if !s.finished {
		if finish {
			// Terminate the stream; no more input is coming.
			if err := s.enc.Close(); err != nil {
				return s.fail(read, 0, zerrors.CategoryInit, "deflate finish", err)
			}
			s.finished = true
		} else {
			// Sync-flush so the bytes handed out are decodable.
			if err := s.enc.Flush(); err != nil {
				return s.fail(read, 0, zerrors.CategoryInit, "deflate flush", err)
			}
		}
	}

	wrote, _ := s.acc.Read(out)
	s.bytesOut += uint64(wrote)

	if s.acc.Len() > 0 {
		return read, wrote, domain.StepOutputFull
	}
	if s.finished {
		s.state = stateDone
		return read, wrote, domain.StepDone
	}
	return read, wrote, domain.StepOK
}

func (s *Session) processInflate(out, in []byte, finish bool) (int, int, domain.StepResult) {
	read, wrote := 0, 0

	// Leftover output from a previous call goes out first.
	if len(s.pending) > 0 {
		n := copy(out, s.pending)
		wrote += n
		s.pending = s.pending[n:]
		if len(s.pending) > 0 {
			return read, wrote, domain.StepOutputFull
		}
	}

	for {
		if s.starving {
			// The decoder is blocked waiting for input.
			if read < len(in) {
				chunk := make([]byte, len(in)-read)
				copy(chunk, in[read:])
				s.feed.data <- chunk
				read = len(in)
				s.bytesIn += uint64(len(chunk))
				s.starving = false
				continue
			}
			if !finish {
				return read, wrote, domain.StepOK
			}
			if !s.dataClosed {
				close(s.feed.data)
				s.dataClosed = true
			}
			s.starving = false
			continue
		}

		select {
		case <-s.feed.req:
			s.starving = true

		case chunk, ok := <-s.outCh:
			if !ok {
				// Decoder finished: stream end or failure.
				if s.teardown != nil {
					s.log.Warnw("codec handle did not release cleanly", "error", s.teardown.Error())
				}
				if s.decErr != nil {
					return s.fail(read, wrote, classifyInflate(s.decErr), "inflate", s.decErr)
				}
				s.state = stateDone
				return read, wrote, domain.StepDone
			}

			s.bytesOut += uint64(len(chunk))
			if isCompressionBomb(s.bomb, s.bytesIn, s.bytesOut) {
				s.log.Warnw("input looks like a compression bomb",
					"method", s.method.String(), "in", s.bytesIn, "out", s.bytesOut)
				return s.fail(read, wrote, zerrors.CategoryBomb, "inflate",
					fmt.Errorf("lifetime expansion %d to %d exceeds the expansion policy",
						s.bytesIn, s.bytesOut))
			}

			n := copy(out[wrote:], chunk)
			wrote += n
			if n < len(chunk) {
				s.pending = chunk[n:]
				return read, wrote, domain.StepOutputFull
			}
			if wrote == len(out) {
				return read, wrote, domain.StepOutputFull
			}
		}
	}
}

func classifyInflate(err error) zerrors.Category {
	if isTruncated(err) {
		return zerrors.CategoryTruncated
	}
	return zerrors.CategoryCorrupt
}

// Close frees the session's codec handle and buffers. Safe to call
// once in any state; the ctx bounds how long teardown may take for a
// decompressing session whose decoder goroutine must be stopped.
func (s *Session) Close(ctx context.Context) error {
	if s.state == stateClosed {
		return nil
	}
	s.state = stateClosed

	if s.compress {
		var err error
		if !s.finished {
			err = s.enc.Close()
		}
		s.accPool.Put(s.acc)
		if err != nil {
			return zerrors.NewCodecError(zerrors.CategoryTeardown, "session close", err)
		}
		return nil
	}

	return system.RunWithContext(ctx, func(context.Context) error {
		s.quitOnce.Do(func() { close(s.quit) })
		<-s.loopDone
		if s.teardown != nil {
			return zerrors.NewCodecError(zerrors.CategoryTeardown, "session close", s.teardown)
		}
		return nil
	})
}
