package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no search directory holds the asset.
var ErrNotFound = errors.New("asset not found")

// Resolver maps asset file names to paths. Directories are searched in order:
// the configured asset dir, the executable's dir, then the working dir. Each
// is tried as-is and with an "assets" subdirectory.
type Resolver struct {
	Dirs []string
}

func NewResolver(assetDir string) *Resolver {
	var dirs []string
	if assetDir != "" {
		dirs = append(dirs, assetDir)
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	return &Resolver{Dirs: dirs}
}

// Path returns the first existing path for name.
func (r *Resolver) Path(name string) (string, error) {
	for _, dir := range r.Dirs {
		for _, p := range []string{filepath.Join(dir, name), filepath.Join(dir, "assets", name)} {
			if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
				return p, nil
			}
		}
	}
	return "", fmt.Errorf("%s: %w", name, ErrNotFound)
}
