package callgen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sdboyer/calljen"
)

// Target describes one generated output: which profile to render, into which
// Go package, and at which path.
type Target struct {
	// Profile is the name of a built-in profile, such as "invokes".
	Profile string `yaml:"profile"`

	// Package is the name used in the package clause of generated files.
	Package string `yaml:"package"`

	// Output is the path of the generated file, relative to the output root.
	Output string `yaml:"output"`

	// Split writes one file per argument count instead of a single file.
	// Each file is named after Output with an _arg{n} suffix.
	Split bool `yaml:"split,omitempty"`
}

func (t Target) profile() (Profile, error) {
	p, ok := LookupProfile(t.Profile)
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q", t.Profile)
	}
	return p, nil
}

func (t Target) header() string {
	return fmt.Sprintf("// Code generated by calljen. DO NOT EDIT.\n\npackage %s\n\n", t.Package)
}

// SplitPath returns the path of the file holding the wrappers with the given
// argument count when the target is split.
func (t Target) SplitPath(args int) string {
	return fmt.Sprintf("%s_arg%d.go", strings.TrimSuffix(t.Output, ".go"), args)
}

// FileJenny renders a whole profile into the single file named by
// Target.Output. It does nothing for split targets.
type FileJenny struct{}

var _ calljen.OneToOne[Target] = FileJenny{}

func (FileJenny) JennyName() string {
	return "FileJenny"
}

func (FileJenny) Generate(t Target) (*calljen.File, error) {
	if t.Split {
		return nil, nil
	}
	p, err := t.profile()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(t.header())
	if _, err := p.WriteTo(&buf); err != nil {
		return nil, err
	}
	return calljen.NewFile(t.Output, buf.Bytes()), nil
}

// SplitJenny renders a profile into one file per argument count. It does
// nothing for targets that are not split.
type SplitJenny struct{}

var _ calljen.OneToMany[Target] = SplitJenny{}

func (SplitJenny) JennyName() string {
	return "SplitJenny"
}

func (SplitJenny) Generate(t Target) (calljen.Files, error) {
	if !t.Split {
		return nil, nil
	}
	p, err := t.profile()
	if err != nil {
		return nil, err
	}

	files := make(calljen.Files, 0, p.MaxArgs)
	for a := 0; a < p.MaxArgs; a++ {
		var buf bytes.Buffer
		buf.WriteString(t.header())
		if _, err := p.writeShapes(&buf, p.shapesWithArgs(a)); err != nil {
			return nil, err
		}
		files = append(files, *calljen.NewFile(t.SplitPath(a), buf.Bytes()))
	}
	return files, nil
}

// NewJennyList returns the generator used by `calljen generate`: both
// target jennies followed by Go formatting of every emitted file.
func NewJennyList() *calljen.JennyList[Target] {
	jl := calljen.JennyListWithNamer(func(t Target) string {
		return t.Output
	})
	jl.AppendOneToOne(FileJenny{})
	jl.AppendOneToMany(SplitJenny{})
	jl.AddPostprocessors(GoFormat())
	return jl
}
