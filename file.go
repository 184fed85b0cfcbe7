package calljen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// File is a single file generated by one or more jennies.
type File struct {
	// The relative path to which the generated file should be written.
	RelativePath string

	// Contents of the generated file.
	Data []byte

	// From is the stack of jennies responsible for producing this File.
	// Wrapper jennies push themselves on the end.
	From []NamedJenny
}

// NewFile makes a new File, attributed to the provided jennies.
func NewFile(path string, data []byte, from ...NamedJenny) *File {
	return &File{
		RelativePath: path,
		Data:         data,
		From:         from,
	}
}

// Exists reports whether the File has both a path and contents. A File that
// does not exist is treated by [JennyList] as a no-op result.
func (f File) Exists() bool {
	return f.RelativePath != "" && len(f.Data) > 0
}

// Validate checks that the File has a relative path and non-empty contents.
func (f File) Validate() error {
	if f.RelativePath == "" {
		return fmt.Errorf("file generated by %s has no path", jennystack(f.From))
	}
	if filepath.IsAbs(f.RelativePath) {
		return fmt.Errorf("files must have relative paths, got %s from %s", f.RelativePath, jennystack(f.From))
	}
	if len(f.Data) == 0 {
		return fmt.Errorf("%s: file generated by %s has no contents", f.RelativePath, jennystack(f.From))
	}
	return nil
}

// ToFS turns a single File into an FS containing only that file.
func (f File) ToFS() (*FS, error) {
	fs := NewFS()
	if err := fs.add(f); err != nil {
		return nil, err
	}
	return fs, nil
}

// Files is a set of File objects.
type Files []File

// Validate checks each File and also that no two Files share a path.
func (fl Files) Validate() error {
	var result *multierror.Error
	seen := make(map[string]File, len(fl))
	for _, f := range fl {
		if err := f.Validate(); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if of, has := seen[f.RelativePath]; has {
			result = multierror.Append(result, fmt.Errorf("%s generated by both %s and %s", f.RelativePath, jennystack(of.From), jennystack(f.From)))
			continue
		}
		seen[f.RelativePath] = f
	}
	return result.ErrorOrNil()
}

// FileMapper transforms a File, for example to format it or add a header.
// It is used as a postprocessor in [JennyList].
type FileMapper func(File) (File, error)

func jennystack(s []NamedJenny) string {
	if len(s) == 0 {
		return "<unknown>"
	}
	names := make([]string, len(s))
	for i, j := range s {
		names[i] = j.JennyName()
	}
	return strings.Join(names, ":")
}
