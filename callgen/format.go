package callgen

import (
	"fmt"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/sdboyer/calljen"
)

// GoFormat returns a postprocessor that gofmts every .go file. Imports are
// sorted and grouped but never added or removed. Other files pass through
// untouched.
func GoFormat() calljen.FileMapper {
	return func(f calljen.File) (calljen.File, error) {
		if filepath.Ext(f.RelativePath) != ".go" {
			return f, nil
		}

		b, err := imports.Process(f.RelativePath, f.Data, &imports.Options{
			Comments:   true,
			TabIndent:  true,
			TabWidth:   8,
			FormatOnly: true,
		})
		if err != nil {
			return f, fmt.Errorf("goimports failed: %w", err)
		}
		f.Data = b
		return f, nil
	}
}
