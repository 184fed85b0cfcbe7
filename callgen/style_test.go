package callgen

import (
	"regexp"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestShapeNames(t *testing.T) {
	is := is.New(t)
	sh := Shape{Args: 2, Returns: 3}
	is.Equal(sh.ReturnTypes(), []string{"R0", "R1", "R2"})
	is.Equal(sh.ArgTypes(), []string{"A0", "A1"})
	is.Equal(sh.ArgNames(), []string{"a0", "a1"})
	is.Equal(sh.TypeParams(), []string{"R0", "R1", "R2", "A0", "A1"})
	is.Equal(sh.Params(), []Param{{Name: "a0", Type: "A0"}, {Name: "a1", Type: "A1"}})
	is.Equal(sh.Params()[1].String(), "a1 A1")

	is.Equal(len(Shape{}.TypeParams()), 0)
}

func TestRenderReflect(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  string
	}{
		{
			name:  "no args no returns",
			shape: Shape{},
			want:  "func CallArg0Ret0(obj iStruct, f func()   ) {\n    obj.Call(f  )\n    return \n}\n",
		},
		{
			name:  "returns only",
			shape: Shape{Returns: 2},
			want:  "func CallArg0Ret2[R0,R1 any](obj iStruct, f func() (R0,R1)  ) (R0,R1){\n    out := obj.Call(f  )\n    return out[0].Interface().(R0),out[1].Interface().(R1)\n}\n",
		},
		{
			name:  "args only",
			shape: Shape{Args: 2},
			want:  "func CallArg2Ret0[A0,A1 any](obj iStruct, f func(A0,A1)  , a0 A0,a1 A1) {\n    obj.Call(f , a0,a1)\n    return \n}\n",
		},
		{
			name:  "args and returns",
			shape: Shape{Args: 1, Returns: 2},
			want:  "func CallArg1Ret2[R0,R1,A0 any](obj iStruct, f func(A0) (R0,R1) , a0 A0) (R0,R1){\n    out := obj.Call(f , a0)\n    return out[0].Interface().(R0),out[1].Interface().(R1)\n}\n",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(ReflectStyle.Render(tt.shape), tt.want)
		})
	}
}

func TestRenderCast(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  string
	}{
		{
			name:  "no args no returns",
			shape: Shape{},
			want:  "// nolint:lll\nfunc Invoke0_0(f func(), obj iStruct) {\n\tobj.call(f)\n\treturn\n}\n",
		},
		{
			name:  "single return is not parenthesized",
			shape: Shape{Returns: 1},
			want:  "// nolint:lll\nfunc Invoke0_1[R0 any](f func() R0, obj iStruct) R0 {\n\tr := obj.call(f)\n\treturn checkedCast[R0](r[0])\n}\n",
		},
		{
			name:  "returns only",
			shape: Shape{Returns: 2},
			want:  "// nolint:lll\nfunc Invoke0_2[R0, R1 any](f func() (R0, R1), obj iStruct) (R0, R1) {\n\tr := obj.call(f)\n\treturn checkedCast[R0](r[0]), checkedCast[R1](r[1])\n}\n",
		},
		{
			name:  "args only",
			shape: Shape{Args: 2},
			want:  "// nolint:lll\nfunc Invoke2_0[A0, A1 any](f func(A0, A1), obj iStruct, a0 A0, a1 A1) {\n\tobj.call(f, a0, a1)\n\treturn\n}\n",
		},
		{
			name:  "args and returns",
			shape: Shape{Args: 1, Returns: 2},
			want:  "// nolint:lll\nfunc Invoke1_2[R0, R1, A0 any](f func(A0) (R0, R1), obj iStruct, a0 A0) (R0, R1) {\n\tr := obj.call(f, a0)\n\treturn checkedCast[R0](r[0]), checkedCast[R1](r[1])\n}\n",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(CastStyle.Render(tt.shape), tt.want)
		})
	}
}

func TestTypeParamClauseOmittedWhenEmpty(t *testing.T) {
	is := is.New(t)
	for _, s := range []Style{ReflectStyle, CastStyle} {
		block := s.Render(Shape{})
		is.True(!strings.Contains(block, "["))
		is.True(!strings.Contains(block, "any"))
	}
}

var typeParamsRe = regexp.MustCompile(`^func \w+\[([^\]]*) any\]`)

// Every comma-separated list in a declaration must have exactly as many
// non-empty elements as the shape calls for: no leading, trailing or doubled
// commas.
func TestCommaSeparation(t *testing.T) {
	for _, p := range Profiles() {
		for _, sh := range p.Shapes() {
			is := is.New(t)
			block := p.Render(sh)
			decl := declLine(block)

			m := typeParamsRe.FindStringSubmatch(decl)
			if sh.Args+sh.Returns == 0 {
				is.True(m == nil)
			} else {
				is.True(m != nil)
				is.Equal(splitNonEmpty(m[1]), sh.TypeParams())
			}

			// value parameters follow the fixed f and obj parameters
			params := topLevelParams(paramList(decl))
			is.Equal(len(params), sh.Args+2)
			for i, want := range sh.Params() {
				is.Equal(params[i+2], want.String())
			}
		}
	}
}

func TestBodyShape(t *testing.T) {
	is := is.New(t)

	// a=2, r=0: two parameters and no result construction
	for _, s := range []Style{ReflectStyle, CastStyle} {
		block := s.Render(Shape{Args: 2})
		is.True(strings.Contains(block, "a0 A0"))
		is.True(strings.Contains(block, "a1 A1"))
		is.True(!strings.Contains(block, "a2"))
		is.True(!strings.Contains(block, ":="))
		is.True(!strings.Contains(block, "R0"))
	}

	// a=0, r=2: two return placeholders, binding and two extractions
	reflectBlock := ReflectStyle.Render(Shape{Returns: 2})
	is.True(strings.HasPrefix(reflectBlock, "func CallArg0Ret2[R0,R1 any]("))
	is.True(strings.Contains(reflectBlock, "out := obj.Call("))
	is.Equal(strings.Count(reflectBlock, ".Interface().("), 2)

	castBlock := CastStyle.Render(Shape{Returns: 2})
	is.True(strings.Contains(castBlock, "func Invoke0_2[R0, R1 any]("))
	is.True(strings.Contains(castBlock, "r := obj.call(f)"))
	is.Equal(strings.Count(castBlock, "checkedCast["), 2)
	is.True(!strings.Contains(castBlock, "A0"))
}

func TestUnknownStylePanics(t *testing.T) {
	is := is.New(t)
	defer func() {
		is.True(recover() != nil)
	}()
	Style(0).Render(Shape{})
}

func TestStyleString(t *testing.T) {
	is := is.New(t)
	is.Equal(ReflectStyle.String(), "reflect")
	is.Equal(CastStyle.String(), "cast")
	is.Equal(Style(9).String(), "Style(9)")
}

func declLine(block string) string {
	for _, line := range strings.Split(block, "\n") {
		if strings.HasPrefix(line, "func ") {
			return line
		}
	}
	return ""
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return append(out, "<empty>")
		}
		out = append(out, tok)
	}
	return out
}

// paramList returns the text between the parentheses of the value
// parameter list of a func declaration line.
func paramList(decl string) string {
	open := strings.Index(decl, "(")
	if i := strings.Index(decl, "]"); i >= 0 && i < strings.Index(decl, "(") {
		open = i + 1
	}
	depth := 0
	for i := open; i < len(decl); i++ {
		switch decl[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return decl[open+1 : i]
			}
		}
	}
	return ""
}

// topLevelParams splits a parameter list on commas that are not nested
// inside parentheses. An empty element is reported as "<empty>".
func topLevelParams(s string) []string {
	var (
		out   []string
		depth int
		start int
	)
	emit := func(tok string) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			tok = "<empty>"
		}
		out = append(out, tok)
	}
	for i, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				emit(s[start:i])
				start = i + 1
			}
		}
	}
	emit(s[start:])
	return out
}
