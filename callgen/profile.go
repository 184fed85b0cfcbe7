package callgen

import (
	"bytes"
	"io"
	"sort"
)

// Profile is a fixed family of wrappers: every combination of argument count
// in [0, MaxArgs) and return count in [0, MaxReturns), rendered in one Style.
type Profile struct {
	Name       string
	MaxArgs    int
	MaxReturns int
	Style      Style
}

// Calls is the reflect-style family, CallArg0Ret0 through CallArg4Ret2.
var Calls = Profile{
	Name:       "calls",
	MaxArgs:    5,
	MaxReturns: 3,
	Style:      ReflectStyle,
}

// Invokes is the cast-style family, Invoke0_0 through Invoke7_4. It is the
// family compiled into package inherit.
var Invokes = Profile{
	Name:       "invokes",
	MaxArgs:    8,
	MaxReturns: 5,
	Style:      CastStyle,
}

// Profiles returns the built-in profiles sorted by name.
func Profiles() []Profile {
	ps := []Profile{Calls, Invokes}
	sort.Slice(ps, func(i, j int) bool {
		return ps[i].Name < ps[j].Name
	})
	return ps
}

// LookupProfile returns the built-in profile with the given name.
func LookupProfile(name string) (Profile, bool) {
	for _, p := range Profiles() {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Shapes returns every shape of the profile in emission order: the outer
// loop is over argument count, the inner loop over return count.
func (p Profile) Shapes() []Shape {
	if p.MaxArgs <= 0 || p.MaxReturns <= 0 {
		return nil
	}
	shapes := make([]Shape, 0, p.MaxArgs*p.MaxReturns)
	for a := 0; a < p.MaxArgs; a++ {
		shapes = append(shapes, p.shapesWithArgs(a)...)
	}
	return shapes
}

func (p Profile) shapesWithArgs(a int) []Shape {
	shapes := make([]Shape, 0, p.MaxReturns)
	for r := 0; r < p.MaxReturns; r++ {
		shapes = append(shapes, Shape{Args: a, Returns: r})
	}
	return shapes
}

// FuncNames returns the wrapper names of the profile in emission order.
func (p Profile) FuncNames() []string {
	shapes := p.Shapes()
	names := make([]string, len(shapes))
	for i, sh := range shapes {
		names[i] = p.Style.FuncName(sh)
	}
	return names
}

// Render returns the text block for a single shape.
func (p Profile) Render(sh Shape) string {
	return p.Style.Render(sh)
}

// WriteTo streams every block of the profile to w. The output is
// deterministic; two calls always produce identical bytes.
func (p Profile) WriteTo(w io.Writer) (int64, error) {
	return p.writeShapes(w, p.Shapes())
}

// Bytes returns the same output as WriteTo.
func (p Profile) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = p.WriteTo(&buf)
	return buf.Bytes()
}

func (p Profile) writeShapes(w io.Writer, shapes []Shape) (int64, error) {
	var total int64
	for i, sh := range shapes {
		block := p.Render(sh)
		if i > 0 {
			block = p.Style.blockSeparator() + block
		}
		n, err := io.WriteString(w, block)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
