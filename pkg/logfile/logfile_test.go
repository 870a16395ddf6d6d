package logfile

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFormatter(t *testing.T) {
	Convey("Testing Formatter", t, func() {
		entry := &logrus.Entry{
			Time:    time.Date(2025, 7, 24, 9, 5, 3, 42000000, time.Local),
			Level:   logrus.ErrorLevel,
			Message: "file too small: a.ksc",
			Data:    logrus.Fields{},
		}
		out, err := (&Formatter{}).Format(entry)
		So(err, ShouldBeNil)
		So(string(out), ShouldEqual, "[2025-07-24T09:05:03.042] [ERROR] file too small: a.ksc\n")

		entry.Level = logrus.InfoLevel
		entry.Data = logrus.Fields{"size": 9, "elapsed": "1s"}
		out, err = (&Formatter{}).Format(entry)
		So(err, ShouldBeNil)
		So(string(out), ShouldEqual, "[2025-07-24T09:05:03.042] [INFO] file too small: a.ksc elapsed=1s size=9\n")
	})
}

func TestOpen(t *testing.T) {
	Convey("Testing Open", t, func() {
		fs := afero.NewMemMapFs()

		Convey("appends to the same file", func() {
			for _, msg := range []string{"first", "second"} {
				logger, closer, err := Open(fs, "run.log")
				So(err, ShouldBeNil)
				logger.Infof("converted: %s", msg)
				So(closer.Close(), ShouldBeNil)
			}
			data, err := afero.ReadFile(fs, "run.log")
			So(err, ShouldBeNil)
			lines := strings.Split(strings.TrimSpace(string(data)), "\n")
			So(len(lines), ShouldEqual, 2)
			So(lines[0], ShouldEndWith, "[INFO] converted: first")
			So(lines[1], ShouldEndWith, "[INFO] converted: second")
		})

		Convey("defaults the path", func() {
			logger, closer, err := Open(fs, "")
			So(err, ShouldBeNil)
			logger.Error("boom")
			closer.Close()
			ok, _ := afero.Exists(fs, DefaultPath)
			So(ok, ShouldBeTrue)
		})

		Convey("read-only filesystem", func() {
			_, _, err := Open(afero.NewReadOnlyFs(fs), "run.log")
			So(err, ShouldNotBeNil)
		})

		Convey("debug lines are dropped", func() {
			var buf bytes.Buffer
			logger := New(&buf)
			logger.Debug("noise")
			So(buf.Len(), ShouldEqual, 0)
		})
	})
}
