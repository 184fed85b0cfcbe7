package callgen

import (
	"fmt"
	"strings"
)

// renderCast emits a gofmt-clean wrapper of the form
//
//	// nolint:lll
//	func Invoke1_2[R0, R1, A0 any](f func(A0) (R0, R1), obj iStruct, a0 A0) (R0, R1) {
//		r := obj.call(f, a0)
//		return checkedCast[R0](r[0]), checkedCast[R1](r[1])
//	}
func renderCast(sh Shape) string {
	const sep = ", "

	var retTypes string
	switch sh.Returns {
	case 0:
	case 1:
		retTypes = " " + sh.ReturnTypes()[0]
	default:
		retTypes = " (" + strings.Join(sh.ReturnTypes(), sep) + ")"
	}

	var params, args, bind, outs strings.Builder
	for _, p := range sh.Params() {
		params.WriteString(sep + p.String())
		args.WriteString(sep + p.Name)
	}
	if sh.Returns > 0 {
		bind.WriteString("r := ")
		for i, rt := range sh.ReturnTypes() {
			if i == 0 {
				outs.WriteString(" ")
			} else {
				outs.WriteString(sep)
			}
			fmt.Fprintf(&outs, "checkedCast[%s](r[%d])", rt, i)
		}
	}

	var b strings.Builder
	b.WriteString("// nolint:lll\n")
	fmt.Fprintf(&b, "func %s%s(f func(%s)%s, obj iStruct%s)%s {\n",
		CastStyle.FuncName(sh),
		typeParamClause(sh.TypeParams(), sep),
		strings.Join(sh.ArgTypes(), sep),
		retTypes,
		params.String(),
		retTypes,
	)
	fmt.Fprintf(&b, "\t%sobj.call(f%s)\n", bind.String(), args.String())
	fmt.Fprintf(&b, "\treturn%s\n", outs.String())
	b.WriteString("}\n")
	return b.String()
}
