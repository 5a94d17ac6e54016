// Package streamer copies page bodies to their destination.
package streamer

import (
	"errors"
	"io"

	"go.trai.ch/tldr/internal/core/domain"
)

// ChunkSize is the size of the buffer a single Copy reads into.
const ChunkSize = 1024

var errInvalidWrite = errors.New("invalid write result")

// Copy reads src in ChunkSize chunks and writes every non-empty chunk to dst unchanged,
// until src reports io.EOF. It returns the number of bytes written.
//
// Failures are returned as *domain.StreamError. Bytes written before a failure stay written.
func Copy(dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, ChunkSize)
	var written int64

	for {
		nr, rerr := src.Read(buf)
		if nr > 0 {
			nw, werr := dst.Write(buf[:nr])
			if nw < 0 || nr < nw {
				nw = 0
				if werr == nil {
					werr = errInvalidWrite
				}
			}
			written += int64(nw)
			if werr != nil {
				return written, &domain.StreamError{Op: domain.StreamOpWrite, Err: werr}
			}
			if nw != nr {
				return written, &domain.StreamError{Op: domain.StreamOpWrite, Err: io.ErrShortWrite}
			}
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				return written, nil
			}
			return written, &domain.StreamError{Op: domain.StreamOpRead, Err: rerr}
		}
	}
}
