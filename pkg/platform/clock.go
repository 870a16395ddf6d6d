// Package platform holds the operating system facing pieces: wall clock and
// the default viewer launcher.
package platform // import "moul.io/ksc2jpeg/pkg/platform"

import "time"

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
