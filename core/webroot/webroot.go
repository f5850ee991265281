// Package webroot locates and validates the directory whose contents
// are served. By default this is the public/ directory sitting next to
// the running executable, regardless of the invocation working
// directory.
package webroot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DirName is the directory served by default, resolved next to the binary.
const DirName = "public"

// Resolve returns the absolute path of the public/ directory that sits
// next to the running executable. The executable path is resolved
// through symlinks first, so a symlinked install still finds the
// directory next to the real binary.
func Resolve() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolving executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return ResolveFrom(filepath.Dir(exe))
}

// ResolveFrom returns the webroot under baseDir, validating that it
// exists and is a directory.
func ResolveFrom(baseDir string) (string, error) {
	dir := filepath.Join(baseDir, DirName)
	resolved, err := Ensure(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s/ directory not found: ensure the static files are created at %q", DirName, dir)
	}
	return resolved, err
}

// Ensure validates that dir exists and is a directory, returning its
// absolute path. A missing webroot is a startup error surfaced before
// any socket is bound.
func Ensure(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("webroot %q not found: %w", abs, err)
	}
	if err != nil {
		return "", fmt.Errorf("checking webroot %q: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("webroot %q is not a directory", abs)
	}
	return abs, nil
}

// Report summarizes the contents of a webroot.
type Report struct {
	Path     string
	Files    int
	Dirs     int
	Bytes    int64
	HasIndex bool
}

// Inspect walks the webroot and summarizes what would be served.
// HasIndex reports whether a top-level index.html exists, which is
// what the static handler serves for GET /.
func Inspect(dir string) (*Report, error) {
	r := &Report{Path: dir}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}
		if d.IsDir() {
			r.Dirs++
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		r.Files++
		r.Bytes += info.Size()
		if d.Name() == "index.html" && filepath.Dir(path) == dir {
			r.HasIndex = true
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking webroot %q: %w", dir, err)
	}
	return r, nil
}
