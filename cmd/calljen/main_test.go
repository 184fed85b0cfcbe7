package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/sdboyer/calljen/callgen"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestProfileCommands(t *testing.T) {
	for _, p := range callgen.Profiles() {
		is := is.New(t)
		out, err := run(t, p.Name)
		is.NoErr(err)
		is.Equal(out, string(p.Bytes()))
	}
}

func TestProfileCommandRejectsArgs(t *testing.T) {
	is := is.New(t)
	_, err := run(t, "calls", "extra")
	is.True(err != nil)
}

func TestGenerateAndVerify(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	manifest := filepath.Join(dir, "calljen.yaml")
	is.NoErr(os.WriteFile(manifest, []byte(`
targets:
  - profile: invokes
    package: wrappers
    output: wrappers/invoke_gen.go
`), 0644))

	_, err := run(t, "generate", "--verify", "--config", manifest)
	is.True(err != nil) // nothing written yet
	is.True(strings.Contains(err.Error(), "out of date"))

	_, err = run(t, "generate", "--config", manifest)
	is.NoErr(err)

	b, err := os.ReadFile(filepath.Join(dir, "wrappers", "invoke_gen.go"))
	is.NoErr(err)
	is.True(strings.HasPrefix(string(b), "// Code generated by calljen. DO NOT EDIT.\n\npackage wrappers\n"))

	_, err = run(t, "generate", "--verify", "--config", manifest, "-v")
	is.NoErr(err)
}

func TestGenerateBadManifest(t *testing.T) {
	is := is.New(t)
	_, err := run(t, "generate", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	is.True(err != nil)
}
