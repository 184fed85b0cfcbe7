package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/sdboyer/calljen/callgen"
)

func TestLoad(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "calljen.yaml")
	is.NoErr(os.WriteFile(path, []byte(`
targets:
  - profile: invokes
    package: inherit
    output: inherit/invoke_gen.go
  - profile: calls
    package: wrap
    output: wrap/calls.go
    split: true
`), 0644))

	m, err := Load(path)
	is.NoErr(err)
	is.Equal(m.Root, dir)
	is.Equal(m.Targets, []callgen.Target{
		{Profile: "invokes", Package: "inherit", Output: "inherit/invoke_gen.go"},
		{Profile: "calls", Package: "wrap", Output: "wrap/calls.go", Split: true},
	})
}

func TestLoadMissing(t *testing.T) {
	is := is.New(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "reading manifest"))
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		errs []string
	}{
		{
			name: "no targets",
			yaml: "targets: []\n",
			errs: []string{"no targets declared"},
		},
		{
			name: "unknown field",
			yaml: "targets:\n  - profile: calls\n    package: x\n    output: x.go\n    bounds: 9\n",
			errs: []string{"field bounds not found"},
		},
		{
			name: "bad target",
			yaml: "targets:\n  - profile: nope\n    package: 9lives\n    output: /abs.go\n",
			errs: []string{
				`unknown profile "nope"`,
				`"9lives" is not a valid package name`,
				"output /abs.go must be relative",
			},
		},
		{
			name: "output checks",
			yaml: `
targets:
  - {profile: calls, package: a, output: ""}
  - {profile: calls, package: a, output: a.txt}
  - {profile: calls, package: a, output: x/a.go}
  - {profile: invokes, package: b, output: ./x/a.go}
`,
			errs: []string{
				"target 0: output is required",
				"target 1: output a.txt must be a .go file",
				"target 3: output ./x/a.go already used by target 2",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			_, err := Parse([]byte(tt.yaml))
			is.True(err != nil)
			for _, want := range tt.errs {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not mention %q", err, want)
				}
			}
		})
	}
}

func TestRepositoryManifest(t *testing.T) {
	is := is.New(t)
	m, err := Load(filepath.Join("..", "..", DefaultPath))
	is.NoErr(err)
	is.Equal(len(m.Targets), 1)
	is.Equal(m.Targets[0].Output, "inherit/invoke_gen.go")
}
