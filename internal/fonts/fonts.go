// Package fonts locates the TTF/OTF file used by the panel, terminal and overlays.
package fonts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoFont is returned when no font file can be found.
var ErrNoFont = errors.New("no font file found")

// Exts are the extensions treated as font files.
var Exts = []string{".ttf", ".otf"}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// ScanDir returns the slash-separated paths, relative to dir, of every font under dir,
// sorted. A missing dir yields no fonts and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(out)
	return out, err
}

// Find resolves path to a font file. A font file is returned as is. A directory is
// searched, preferring a file whose name contains "regular".
func Find(path string) (string, error) {
	if path == "" {
		return "", ErrNoFont
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", ErrNoFont
	}
	if !info.IsDir() {
		if !isFont(path) {
			return "", ErrNoFont
		}
		return path, nil
	}
	list, err := ScanDir(path)
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", ErrNoFont
	}
	pick := list[0]
	for _, rel := range list {
		if strings.Contains(strings.ToLower(filepath.Base(rel)), "regular") {
			pick = rel
			break
		}
	}
	return filepath.Join(path, filepath.FromSlash(pick)), nil
}
