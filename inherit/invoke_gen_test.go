package inherit

import (
	"context"
	"testing"

	"github.com/matryer/is"

	"github.com/sdboyer/calljen/callgen"
	"github.com/sdboyer/calljen/internal/config"
)

// TestGeneratedCodeUpToDate fails when invoke_gen.go no longer matches what
// `go generate` would write.
func TestGeneratedCodeUpToDate(t *testing.T) {
	is := is.New(t)

	m, err := config.Load("../" + config.DefaultPath)
	is.NoErr(err)

	jfs, err := callgen.NewJennyList().GenerateFS(m.Targets...)
	is.NoErr(err)
	is.NoErr(jfs.Verify(context.Background(), m.Root))
}
