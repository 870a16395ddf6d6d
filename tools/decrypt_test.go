package main

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"moul.io/ksc2jpeg/pkg/kscdec"
)

func TestFilters(t *testing.T) {
	Convey("Testing the stdin filters", t, func() {
		jpeg := []byte("\xff\xd8\xff\xe0 tiny \xff\xd9")

		var sealed bytes.Buffer
		So(encrypt(&sealed, bytes.NewReader(jpeg)), ShouldBeNil)
		So(sealed.Len(), ShouldEqual, len(jpeg)+kscdec.HeaderSize)

		var opened bytes.Buffer
		So(decrypt(&opened, bytes.NewReader(sealed.Bytes())), ShouldBeNil)
		So(opened.Bytes(), ShouldResemble, jpeg)

		So(decrypt(&opened, bytes.NewReader([]byte("short"))), ShouldEqual, kscdec.ErrShortInput)
	})
}
