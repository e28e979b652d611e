package analyzer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

var (
	// ErrUnsupportedFile is returned when the selected file is not an Excel workbook.
	ErrUnsupportedFile = errors.New("please select an Excel file (.xlsx or .xls)")
	// ErrNoFile is returned when analyzing before selecting a file.
	ErrNoFile = errors.New("please select a file first")
)

// Upload describes the brokerage export selected by the user.
// Only its name and size are used: the content is not parsed.
type Upload struct {
	Name string
	Size int64
}

// NewUpload checks the file name has an Excel extension.
func NewUpload(name string, size int64) (Upload, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xls":
	default:
		return Upload{}, fmt.Errorf("%w: %q", ErrUnsupportedFile, filepath.Base(name))
	}
	if size < 0 {
		size = 0
	}
	return Upload{Name: filepath.Base(name), Size: size}, nil
}

// SizeString returns the size for display, like "1.5 KiB".
func (u Upload) SizeString() string { return humanize.IBytes(uint64(u.Size)) }

func (u Upload) String() string { return fmt.Sprintf("%s (%s)", u.Name, u.SizeString()) }
