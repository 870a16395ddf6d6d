package platform

import (
	"os/exec"
	"runtime"
	"strings"

	shlex "github.com/anmitsu/go-shlex"
	"github.com/pkg/errors"
)

// PathPlaceholder is replaced by the file path in a custom viewer command.
// Without it the path is appended as the last argument.
const PathPlaceholder = "{}"

// Launcher starts the viewer for a file and does not wait for it.
type Launcher struct {
	argv []string
}

// NewLauncher returns the platform default launcher, or one running viewer
// when it is not empty. viewer is split with shell quoting rules.
func NewLauncher(viewer string) (*Launcher, error) {
	if strings.TrimSpace(viewer) == "" {
		return &Launcher{argv: defaultCommand(runtime.GOOS)}, nil
	}
	argv, err := shlex.Split(viewer, true)
	if err != nil {
		return nil, errors.Wrapf(err, "parse viewer command %q", viewer)
	}
	if len(argv) == 0 {
		return nil, errors.Errorf("empty viewer command %q", viewer)
	}
	return &Launcher{argv: argv}, nil
}

func defaultCommand(goos string) []string {
	switch goos {
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	case "darwin":
		return []string{"open"}
	default:
		return []string{"xdg-open"}
	}
}

// Command returns the argv used to open path.
func (l *Launcher) Command(path string) []string {
	argv := make([]string, 0, len(l.argv)+1)
	replaced := false
	for _, arg := range l.argv {
		if strings.Contains(arg, PathPlaceholder) {
			arg = strings.Replace(arg, PathPlaceholder, path, -1)
			replaced = true
		}
		argv = append(argv, arg)
	}
	if !replaced {
		argv = append(argv, path)
	}
	return argv
}

// Open is best effort: the process is started and reaped in the background.
func (l *Launcher) Open(path string) error {
	argv := l.Command(path)
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "start %s", argv[0])
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
