package kscdec

import (
	"bytes"
	"io/ioutil"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDecoder(t *testing.T) {
	Convey("Testing Decoder", t, func() {
		Convey("known vector", func() {
			cipher := []byte{0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x1b}
			d := New()
			plain := make([]byte, len(cipher))
			d.Decode(plain, cipher)
			So(plain, ShouldResemble, []byte{0x14, 0x87, 0x36, 0x28, 0xa4, 0x56, 0x35, 0x04, 0x69, 0x8a, 0x2a, 0x2d})

			d.Reset()
			d.Prime(cipher[:HeaderSize])
			tail := make([]byte, 4)
			d.Decode(tail, cipher[HeaderSize:])
			So(tail, ShouldResemble, []byte{0x69, 0x8a, 0x2a, 0x2d})
		})

		Convey("jpeg marker vector", func() {
			cipher := []byte{0x04, 0xe9, 0x13, 0x79, 0xce, 0xd5, 0xa8, 0x77, 0x84, 0xb0, 0x5c, 0x72}
			d := New()
			d.Prime(cipher)
			out := make([]byte, 4)
			d.Decode(out, cipher[HeaderSize:])
			So(out, ShouldResemble, []byte{0xff, 0xd8, 0xff, 0xe0})
		})

		Convey("reset rewinds the register", func() {
			d := New()
			first := d.DecodeByte(0x41)
			d.DecodeByte(0x42)
			d.Reset()
			So(d.DecodeByte(0x41), ShouldEqual, first)
			So(first, ShouldEqual, byte(0x41^(Seed>>8)))
		})

		Convey("in place decode", func() {
			buf := []byte{0x10, 0x11, 0x12, 0x13}
			New().Decode(buf, buf)
			So(buf, ShouldResemble, []byte{0x14, 0x87, 0x36, 0x28})
		})
	})
}

func TestEncode(t *testing.T) {
	Convey("Testing Encode", t, func() {
		payload := []byte("\xff\xd8\xff\xe0 not really a jpeg")
		container := Encode([]byte("KSCHEAD!"), payload)
		So(len(container), ShouldEqual, HeaderSize+len(payload))

		d := New()
		plain := make([]byte, len(container))
		d.Decode(plain, container)
		So(string(plain[:HeaderSize]), ShouldEqual, "KSCHEAD!")
		So(plain[HeaderSize:], ShouldResemble, payload)

		So(Encode(nil, []byte{0xff, 0xd8, 0xff, 0xe0}), ShouldResemble,
			[]byte{0x04, 0xe9, 0x13, 0x79, 0xce, 0xd5, 0xa8, 0x77, 0x84, 0xb0, 0x5c, 0x72})
	})
}

func TestReader(t *testing.T) {
	Convey("Testing Reader", t, func() {
		Convey("decodes the payload", func() {
			payload := bytes.Repeat([]byte("0123456789"), 1000)
			out, err := ioutil.ReadAll(NewReader(bytes.NewReader(Encode(nil, payload))))
			So(err, ShouldBeNil)
			So(out, ShouldResemble, payload)
		})

		Convey("rejects header-only streams", func() {
			_, err := ioutil.ReadAll(NewReader(bytes.NewReader(make([]byte, HeaderSize))))
			So(err, ShouldEqual, ErrShortInput)

			_, err = ioutil.ReadAll(NewReader(bytes.NewReader([]byte{1, 2, 3})))
			So(err, ShouldEqual, ErrShortInput)
		})

		Convey("single byte payload", func() {
			in := bytes.Repeat([]byte{0x41}, 9)
			out, err := ioutil.ReadAll(NewReader(bytes.NewReader(in)))
			So(err, ShouldBeNil)
			So(out, ShouldResemble, []byte{0x2d})
		})
	})
}
