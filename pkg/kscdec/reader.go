package kscdec

import (
	"io"

	"github.com/pkg/errors"
)

// ErrShortInput is returned when a stream ends before any payload byte.
var ErrShortInput = errors.New("ksc stream too short")

// Reader decodes a KSC stream on the fly. The header is consumed on the
// first call to Read.
type Reader struct {
	r      io.Reader
	dec    *Decoder
	primed bool
	n      int64
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, dec: New()}
}

func (kr *Reader) Read(p []byte) (int, error) {
	if !kr.primed {
		var header [HeaderSize]byte
		if _, err := io.ReadFull(kr.r, header[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return 0, ErrShortInput
			}
			return 0, errors.Wrap(err, "read header")
		}
		kr.dec.Prime(header[:])
		kr.primed = true
	}
	n, err := kr.r.Read(p)
	kr.dec.Decode(p[:n], p[:n])
	kr.n += int64(n)
	if err == io.EOF && kr.n == 0 {
		return n, ErrShortInput
	}
	return n, err
}
