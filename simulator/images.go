package simulator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrImagesDirNotFound = fmt.Errorf("images directory not found")
	ErrNoImages          = fmt.Errorf("no image files found")
)

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ContentType maps a supported image extension to its mime type
func ContentType(path string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// ImageFiles lists the jpg, jpeg, png, gif and webp files of dir in name order.
// Extensions are matched case-insensitively.
func ImageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrImagesDirNotFound, dir)
		}
		return nil, errors.Wrap(err, "read images directory")
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := contentTypes[strings.ToLower(filepath.Ext(e.Name()))]; ok {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	if len(files) == 0 {
		return nil, errors.Wrap(ErrNoImages, dir)
	}

	return files, nil
}
