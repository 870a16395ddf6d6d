// Package kscdec implements the stream cipher protecting KSC image containers.
package kscdec // import "moul.io/ksc2jpeg/pkg/kscdec"

const (
	// Seed is the register value at the start of every file.
	Seed uint16 = 1124
	// C1 and C2 drive the register update.
	C1 uint16 = 52845
	C2 uint16 = 22719

	// HeaderSize is the number of leading bytes used to prime the register.
	// Their plaintext is discarded.
	HeaderSize = 8
)

// Decoder holds the 16-bit cipher register. A Decoder must not be shared
// between concurrent decodes; build one per file.
type Decoder struct {
	r uint16
}

// New returns a decoder ready for the first byte of a file.
func New() *Decoder {
	d := &Decoder{}
	d.Reset()
	return d
}

// Reset rewinds the register to Seed.
func (d *Decoder) Reset() { d.r = Seed }

// DecodeByte returns the plaintext of cipher and advances the register.
func (d *Decoder) DecodeByte(cipher byte) byte {
	plain := cipher ^ byte(d.r>>8)
	d.r = (uint16(cipher)+d.r)*C1 + C2
	return plain
}

// Decode decodes src into dst in order. dst and src may be the same slice.
func (d *Decoder) Decode(dst, src []byte) {
	for i, c := range src {
		dst[i] = d.DecodeByte(c)
	}
}

// Prime feeds the header through the register and drops the result.
// Only the first HeaderSize bytes of header are used.
func (d *Decoder) Prime(header []byte) {
	if len(header) > HeaderSize {
		header = header[:HeaderSize]
	}
	for _, c := range header {
		d.DecodeByte(c)
	}
}

// Encoder is the inverse of Decoder. The register evolves from the cipher
// byte on both sides, so an Encoder and a Decoder started from Seed stay in
// lockstep.
type Encoder struct {
	r uint16
}

func NewEncoder() *Encoder {
	return &Encoder{r: Seed}
}

func (e *Encoder) Reset() { e.r = Seed }

func (e *Encoder) EncodeByte(plain byte) byte {
	cipher := plain ^ byte(e.r>>8)
	e.r = (uint16(cipher)+e.r)*C1 + C2
	return cipher
}

// Encode builds a complete container: header followed by the encrypted
// payload. header shorter than HeaderSize is zero padded.
func Encode(header, payload []byte) []byte {
	out := make([]byte, HeaderSize+len(payload))
	copy(out, header)
	e := NewEncoder()
	for i := 0; i < HeaderSize; i++ {
		out[i] = e.EncodeByte(out[i])
	}
	for i, p := range payload {
		out[HeaderSize+i] = e.EncodeByte(p)
	}
	return out
}
