package callgen

import (
	"fmt"
	"strings"
)

// Style selects how a generated wrapper extracts its typed results from the
// untyped result of the wrapped call. The two styles produce different
// wrapper names, parameter orders and formatting, and are never mixed
// within a profile.
type Style int

const (
	// ReflectStyle wrappers receive a []reflect.Value from obj.Call and
	// convert each slot with Value.Interface and a type assertion.
	ReflectStyle Style = iota + 1

	// CastStyle wrappers receive a []reflect.Value from obj.call and convert
	// each slot with the generic checkedCast helper, which tolerates nil.
	CastStyle
)

func (s Style) String() string {
	switch s {
	case ReflectStyle:
		return "reflect"
	case CastStyle:
		return "cast"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// FuncName returns the name of the wrapper generated for the shape. Names
// embed both counts and are unique within a style.
func (s Style) FuncName(sh Shape) string {
	switch s {
	case ReflectStyle:
		return fmt.Sprintf("CallArg%dRet%d", sh.Args, sh.Returns)
	case CastStyle:
		return fmt.Sprintf("Invoke%d_%d", sh.Args, sh.Returns)
	default:
		panic(fmt.Sprintf("unknown extraction style %s", s))
	}
}

// Render returns the complete text block for the shape, including its
// trailing newline.
func (s Style) Render(sh Shape) string {
	switch s {
	case ReflectStyle:
		return renderReflect(sh)
	case CastStyle:
		return renderCast(sh)
	default:
		panic(fmt.Sprintf("unknown extraction style %s", s))
	}
}

// blockSeparator is written between consecutive blocks.
func (s Style) blockSeparator() string {
	if s == CastStyle {
		return "\n"
	}
	return ""
}

// typeParamClause wraps type parameters in a generic parameter list
// constrained to any. With no type parameters there is no clause at all;
// Go rejects an empty [] list.
func typeParamClause(tp []string, sep string) string {
	if len(tp) == 0 {
		return ""
	}
	return "[" + strings.Join(tp, sep) + " any]"
}
