package cmd

import (
	"fmt"
	"os"

	"github.com/etnz/analyzer"
)

// selectFile selects the file at path in the session.
func selectFile(s *analyzer.Session, path string) error {
	if _, err := analyzer.NewUpload(path, 0); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot read %q: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%q is a directory", path)
	}
	_, err = s.SelectFile(path, info.Size())
	return err
}

// exportFile writes the displayed holdings of s to the file name and returns
// the number of holdings written.
func exportFile(s *analyzer.Session, name string) (int, error) {
	f, err := os.Create(name)
	if err != nil {
		return 0, err
	}
	if err := s.Export(f); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}
	return len(s.Display()), nil
}
