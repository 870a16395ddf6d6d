// Package logfile appends timestamped progress lines to a log file.
package logfile // import "moul.io/ksc2jpeg/pkg/logfile"

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	DefaultPath     = "ksc2jpeg.log"
	TimestampLayout = "2006-01-02T15:04:05.000"
)

// Formatter renders entries as "[timestamp] [LEVEL] message".
type Formatter struct {
	TimestampLayout string
}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	layout := f.TimestampLayout
	if layout == "" {
		layout = TimestampLayout
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, "[%s] [%s] %s", entry.Time.Format(layout), strings.ToUpper(entry.Level.String()), entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// Open appends to path, creating it when needed. The returned closer
// releases the file.
func Open(fs afero.Fs, path string) (*logrus.Logger, io.Closer, error) {
	if path == "" {
		path = DefaultPath
	}
	f, err := fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open log file %s", path)
	}
	return New(f), f, nil
}

func New(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.Out = w
	logger.Formatter = &Formatter{}
	logger.Level = logrus.InfoLevel
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	return New(ioutil.Discard)
}
