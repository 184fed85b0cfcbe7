package callgen

import (
	"fmt"
	"strings"
)

// renderReflect emits a wrapper of the form
//
//	func CallArg1Ret1[R0,A0 any](obj iStruct, f func(A0) (R0) , a0 A0) (R0){
//	    out := obj.Call(f , a0)
//	    return out[0].Interface().(R0)
//	}
//
// The output is not gofmt-clean and consumers depend on it as is; spacing and
// comma placement must stay exactly as written here.
func renderReflect(sh Shape) string {
	const sep = ","

	var retTypes string
	if sh.Returns > 0 {
		retTypes = "(" + strings.Join(sh.ReturnTypes(), sep) + ")"
	}

	params := make([]string, sh.Args)
	for i, p := range sh.Params() {
		params[i] = p.String()
	}

	var argComma, bind string
	if sh.Args > 0 {
		argComma = ","
	}
	if sh.Returns > 0 {
		bind = "out := "
	}

	outs := make([]string, sh.Returns)
	for i, rt := range sh.ReturnTypes() {
		outs[i] = fmt.Sprintf("out[%d].Interface().(%s)", i, rt)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "func %s%s(obj iStruct, f func(%s) %s %s %s) %s{\n",
		ReflectStyle.FuncName(sh),
		typeParamClause(sh.TypeParams(), sep),
		strings.Join(sh.ArgTypes(), sep),
		retTypes,
		argComma,
		strings.Join(params, sep),
		retTypes,
	)
	fmt.Fprintf(&b, "    %sobj.Call(f %s %s)\n", bind, argComma, strings.Join(sh.ArgNames(), sep))
	fmt.Fprintf(&b, "    return %s\n", strings.Join(outs, sep))
	b.WriteString("}\n")
	return b.String()
}
