package codec

import (
	"errors"
	"io"

	"github.com/iamNilotpal/zcodec/internal/core/ports"
)

// inflateFeed is the blocking input source a decompressing session's
// decoder reads from. Go's DEFLATE decoders pull from an io.Reader, so
// the push-style Process API is bridged by parking the decoder in its
// own goroutine and feeding it chunks on demand.
//
// Protocol: when the feed runs dry it posts a token on req (buffered,
// at most one outstanding) and blocks on data. Process consumes the
// token, then either delivers a copied chunk, closes data to signal
// end of input, or remembers the starvation and returns StepOK.
type inflateFeed struct {
	req  chan struct{}
	data chan []byte
	quit <-chan struct{}
	cur  []byte
}

func newInflateFeed(quit <-chan struct{}) *inflateFeed {
	return &inflateFeed{
		req:  make(chan struct{}, 1),
		data: make(chan []byte),
		quit: quit,
	}
}

func (f *inflateFeed) Read(p []byte) (int, error) {
	for len(f.cur) == 0 {
		// A token may already be posted from an earlier dry read; the
		// meaning is the same, so don't block on a second one.
		select {
		case f.req <- struct{}{}:
		default:
		}

		select {
		case chunk, ok := <-f.data:
			if !ok {
				return 0, io.EOF
			}
			f.cur = chunk
		case <-f.quit:
			return 0, errSessionClosed
		}
	}

	n := copy(p, f.cur)
	f.cur = f.cur[n:]
	return n, nil
}

// inflateLoop runs the decoder until stream end, failure, or session
// close. Decoded chunks are handed to Process over outCh; decErr and
// teardown are published before outCh closes.
func (s *Session) inflateLoop(port ports.CodecPort, chunkSize int) {
	defer close(s.loopDone)
	defer close(s.outCh)

	// Construction reads the container header, so it blocks on the
	// feed until the first chunks arrive.
	dec, err := port.NewDecoder(s.feed)
	if err != nil {
		if !errors.Is(err, errSessionClosed) {
			s.decErr = err
		}
		return
	}

	for {
		// A fresh buffer per chunk: ownership moves to Process, which
		// may stash it as pending across calls.
		buf := make([]byte, chunkSize)
		n, rerr := dec.Read(buf)

		if n > 0 {
			select {
			case s.outCh <- buf[:n]:
			case <-s.quit:
				dec.Close()
				return
			}
		}

		if rerr != nil {
			if terr := dec.Close(); terr != nil {
				s.teardown = terr
			}
			if rerr != io.EOF && !errors.Is(rerr, errSessionClosed) {
				s.decErr = rerr
			}
			return
		}
	}
}
