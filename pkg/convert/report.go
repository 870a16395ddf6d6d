package convert

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mgutz/ansi"
	"github.com/olekukonko/tablewriter"
)

// Failure records one file that could not be converted.
type Failure struct {
	Path string
	Err  error
}

type Summary struct {
	Converted int
	Skipped   int
	Failed    int
	DirErrors int
	Failures  []Failure
}

// Render writes the counters and every failure as a table.
func (s Summary) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Converted", "Skipped", "Failed", "Unreadable dirs"})
	table.Append([]string{
		strconv.Itoa(s.Converted),
		strconv.Itoa(s.Skipped),
		strconv.Itoa(s.Failed),
		strconv.Itoa(s.DirErrors),
	})
	table.Render()

	if len(s.Failures) == 0 {
		return
	}
	failures := tablewriter.NewWriter(w)
	failures.SetHeader([]string{"File", "Reason"})
	failures.SetAutoWrapText(false)
	for _, f := range s.Failures {
		failures.Append([]string{f.Path, f.Err.Error()})
	}
	failures.Render()
}

func (c *Converter) fail(path string, err error) {
	c.summary.Failed++
	c.summary.Failures = append(c.summary.Failures, Failure{Path: path, Err: err})
	c.errorf("%s %s: %v\n", c.paint("Failed:", "red"), path, err)
	c.Log.Error(err.Error())
}

// printf writes informational console output, muted by Quiet.
func (c *Converter) printf(format string, args ...interface{}) {
	if c.Quiet {
		return
	}
	fmt.Fprintf(c.Stdout, format, args...)
}

func (c *Converter) errorf(format string, args ...interface{}) {
	fmt.Fprintf(c.Stderr, format, args...)
}

func (c *Converter) paint(s, style string) string {
	if !c.Color {
		return s
	}
	return ansi.Color(s, style)
}
