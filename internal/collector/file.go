package collector

import (
	"fmt"
	"path/filepath"

	"github.com/yacobolo/csscollect/internal/fsutil"
)

// FileSettings configures CollectFile.
type FileSettings struct {
	Settings
	// DestFile is where the processed document is written; the source file by default.
	DestFile string
}

// CollectFile runs Collect on the document at path and writes the result back
// when it changed. BaseDir defaults to the document's directory and DestDir to
// the destination file's directory.
func CollectFile(path string, fs FileSettings) (*Result, error) {
	file, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	destFile := file
	if fs.DestFile != "" {
		if destFile, err = filepath.Abs(fs.DestFile); err != nil {
			return nil, fmt.Errorf("resolve %s: %w", fs.DestFile, err)
		}
	}

	settings := fs.Settings
	if settings.Encoding == "" {
		settings.Encoding = fsutil.DefaultEncoding
	}
	if settings.BaseDir == "" {
		settings.BaseDir = filepath.Dir(file)
	}
	if settings.DestDir == "" {
		settings.DestDir = filepath.Dir(destFile)
	}

	enc, err := fsutil.LookupEncoding(settings.Encoding)
	if err != nil {
		return nil, err
	}
	content, err := fsutil.ReadText(file, enc)
	if err != nil {
		return nil, err
	}

	result := &Result{Content: content}
	if content != "" {
		inner := settings
		inner.Callback = nil
		if result, err = Collect(content, inner); err != nil {
			return nil, fmt.Errorf("collect %s: %w", file, err)
		}
		if result.Changed(content) {
			if err := fsutil.WriteText(destFile, result.Content); err != nil {
				return nil, err
			}
			result.Written = true
		}
	}
	result.File = destFile

	if settings.Callback != nil {
		settings.Callback(result.Errors, result)
	}
	return result, nil
}
