// Package fsutil wraps the handful of filesystem operations the collector needs:
// reading text in a named encoding, writing files with their parent directories,
// deleting files and checking for existence.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is used when no encoding label is given.
const DefaultEncoding = "utf8"

// LookupEncoding resolves a WHATWG encoding label ("utf8", "latin1", "windows-1251", ...).
func LookupEncoding(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = DefaultEncoding
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	return enc, nil
}

// ReadText reads the file at path and decodes it with enc.
// A nil enc means UTF-8. A leading UTF-8 byte order mark is dropped.
func ReadText(path string, enc encoding.Encoding) (string, error) {
	// #nosec G304 - paths come from the document being processed
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	if enc == nil || enc == unicode.UTF8 {
		return strings.TrimPrefix(string(data), "\ufeff"), nil
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}
	return string(decoded), nil
}

// WriteText writes content to path, creating missing parent directories.
func WriteText(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Remove deletes the file at path. A file that is already gone is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// ErrIsDir is returned by Exists when path names a directory.
var ErrIsDir = errors.New("is a directory")

// Exists reports whether a file exists at path.
// Only "does not exist" yields (false, nil); a directory or any other stat
// failure is an error.
func Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s: %w", path, ErrIsDir)
	}
	return true, nil
}

// DirExists reports whether path names an existing directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
