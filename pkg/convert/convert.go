// Package convert turns KSC containers into JPEG files.
package convert // import "moul.io/ksc2jpeg/pkg/convert"

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"moul.io/ksc2jpeg/pkg/kscdec"
	"moul.io/ksc2jpeg/pkg/platform"
)

const (
	InputExt  = ".ksc"
	OutputExt = ".jpeg"

	// DefaultMaxSize bounds the buffer allocated for a single file.
	DefaultMaxSize = 1 << 30
)

type Clock interface {
	Now() time.Time
}

// Launcher opens a converted file with an external viewer.
type Launcher interface {
	Open(path string) error
}

// Converter holds everything a conversion touches outside of the cipher.
// It processes one file at a time and is not safe for concurrent use.
type Converter struct {
	Fs       afero.Fs
	Clock    Clock
	Launcher Launcher
	Log      logrus.FieldLogger
	Stdout   io.Writer
	Stderr   io.Writer

	OutDir   string
	MaxSize  uint64
	Quiet    bool
	AutoOpen bool
	Color    bool

	summary Summary
}

func New(fs afero.Fs) *Converter {
	log := logrus.New()
	log.Out = ioutil.Discard
	return &Converter{
		Fs:      fs,
		Clock:   platform.SystemClock{},
		Log:     log,
		Stdout:  ioutil.Discard,
		Stderr:  ioutil.Discard,
		MaxSize: DefaultMaxSize,
	}
}

// Summary returns the counters accumulated since the last Walk.
func (c *Converter) Summary() Summary { return c.summary }

// Convert decrypts inPath into outPath. The input is loaded whole, the
// header primes a fresh decoder and the remaining bytes are written in order.
// A failure while writing leaves the partial output in place.
func (c *Converter) Convert(inPath, outPath string) error {
	start := c.Clock.Now()

	in, err := c.Fs.Open(inPath)
	if err != nil {
		return newError(KindInputOpen, inPath, err)
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return newError(KindInputOpen, inPath, errors.Wrap(err, "stat"))
	}
	size := fi.Size()
	if size <= kscdec.HeaderSize {
		return newError(KindFileTooSmall, inPath, errors.Errorf("%d bytes, need more than %d", size, kscdec.HeaderSize))
	}

	buf, err := c.allocate(size)
	if err != nil {
		return newError(KindAllocation, inPath, err)
	}
	if _, err := io.ReadFull(in, buf); err != nil {
		return newError(KindInputOpen, inPath, errors.Wrap(err, "read"))
	}

	dec := kscdec.New()
	dec.Prime(buf[:kscdec.HeaderSize])

	if dir := filepath.Dir(outPath); dir != "." {
		if err := c.Fs.MkdirAll(dir, 0775); err != nil {
			return newError(KindOutputOpen, outPath, errors.Wrap(err, "create parent directory"))
		}
	}
	out, err := c.Fs.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return newError(KindOutputOpen, outPath, err)
	}

	payload := buf[kscdec.HeaderSize:]
	dec.Decode(payload, payload)
	if _, err := out.Write(payload); err != nil {
		out.Close()
		return newError(KindWrite, outPath, err)
	}
	if err := out.Close(); err != nil {
		return newError(KindWrite, outPath, errors.Wrap(err, "close"))
	}

	elapsed := c.Clock.Now().Sub(start).Seconds()
	c.printf("%s %s -> %s (%.3fs, %s)\n", c.paint("Converted:", "green"), inPath, outPath, elapsed, humanize.Bytes(uint64(len(payload))))
	c.Log.Infof("converted: %s -> %s (%.3fs)", inPath, outPath, elapsed)
	return nil
}

func (c *Converter) allocate(size int64) (buf []byte, err error) {
	if c.MaxSize > 0 && uint64(size) > c.MaxSize {
		return nil, errors.Errorf("%s exceeds limit of %s", humanize.IBytes(uint64(size)), humanize.IBytes(c.MaxSize))
	}
	if int64(int(size)) != size {
		return nil, errors.Errorf("%d bytes do not fit in the address space", size)
	}
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = errors.Errorf("allocate %d bytes: %v", size, r)
		}
	}()
	return make([]byte, size), nil
}

// OutputPath derives the JPEG path for in. Without OutDir the file lands
// next to its input. With OutDir, the directory of in relative to root is
// mirrored below OutDir; an empty root flattens into OutDir.
func (c *Converter) OutputPath(root, in string) string {
	base := filepath.Base(in)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + OutputExt
	if c.OutDir == "" {
		return filepath.Join(filepath.Dir(in), name)
	}
	if root != "" {
		rel, err := filepath.Rel(root, filepath.Dir(in))
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return filepath.Join(c.OutDir, rel, name)
		}
	}
	return filepath.Join(c.OutDir, name)
}

// Process converts in unless its output already exists. An empty out uses
// OutputPath. Failures are reported and returned; the caller decides
// whether they matter.
func (c *Converter) Process(in, out string) error {
	if out == "" {
		out = c.OutputPath("", in)
	}
	if c.isRegular(out) {
		c.printf("Skip (already exists): %s\n", out)
		c.Log.Infof("skip exists: %s", out)
		c.summary.Skipped++
		return nil
	}

	c.printf("Converting %s -> %s ...\n", in, out)
	if err := c.Convert(in, out); err != nil {
		c.fail(in, err)
		return err
	}
	c.summary.Converted++

	if c.AutoOpen && c.Launcher != nil {
		if err := c.Launcher.Open(out); err != nil {
			c.Log.Warnf("auto-open failed: %s: %v", out, err)
		}
	}
	return nil
}

func (c *Converter) isRegular(path string) bool {
	fi, err := c.Fs.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
