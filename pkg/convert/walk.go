package convert

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Walk converts every .ksc file below root, depth first and in lexical
// order. Unreadable directories are reported and skipped, file failures are
// counted in the returned Summary. Only a missing root is an error.
func (c *Converter) Walk(root string) (Summary, error) {
	if root == "" {
		root = "."
	}
	fi, err := c.Fs.Stat(root)
	if err != nil || !fi.IsDir() {
		c.Log.Errorf("start dir not found: %s", root)
		return Summary{}, errors.Errorf("start directory not found: %s", root)
	}

	c.summary = Summary{}
	c.printf("Scanning recursively from: %s\n", root)

	err = afero.Walk(c.Fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			c.summary.DirErrors++
			c.errorf("Cannot open dir: %s: %v\n", path, err)
			c.Log.Errorf("cannot open dir: %s: %v", path, err)
			return nil
		}
		if !info.Mode().IsRegular() || !isKSC(path) {
			return nil
		}
		out := c.OutputPath(root, path)
		if c.isRegular(out) {
			c.printf("Skip (already exists): %s\n", path)
			c.Log.Infof("skip exists (dirwalk): %s", path)
			c.summary.Skipped++
			return nil
		}
		_ = c.Process(path, out)
		return nil
	})
	return c.summary, errors.Wrap(err, "walk")
}

func isKSC(path string) bool {
	return strings.EqualFold(filepath.Ext(path), InputExt)
}
