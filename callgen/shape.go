package callgen

import "strconv"

// Shape is one point in a profile's iteration space: the number of arguments
// a generated wrapper accepts and the number of values it returns.
type Shape struct {
	Args    int
	Returns int
}

// Param is a single positional value parameter of a generated wrapper.
type Param struct {
	Name string
	Type string
}

func (p Param) String() string {
	return p.Name + " " + p.Type
}

// ReturnTypes returns the return-type placeholders R0..R{r-1}.
func (s Shape) ReturnTypes() []string {
	return positional("R", s.Returns)
}

// ArgTypes returns the argument-type placeholders A0..A{a-1}.
func (s Shape) ArgTypes() []string {
	return positional("A", s.Args)
}

// ArgNames returns the argument value names a0..a{a-1}.
func (s Shape) ArgNames() []string {
	return positional("a", s.Args)
}

// TypeParams returns every type parameter of the wrapper. Return placeholders
// always come first, followed by argument placeholders. Downstream callers
// instantiate wrappers explicitly (e.g. Invoke1_1[string]), so this order is
// part of the generated API and must not change.
func (s Shape) TypeParams() []string {
	tp := make([]string, 0, s.Args+s.Returns)
	tp = append(tp, s.ReturnTypes()...)
	return append(tp, s.ArgTypes()...)
}

// Params returns the positional value parameters, one per argument.
func (s Shape) Params() []Param {
	ps := make([]Param, s.Args)
	for i := range ps {
		ps[i] = Param{
			Name: "a" + strconv.Itoa(i),
			Type: "A" + strconv.Itoa(i),
		}
	}
	return ps
}

func positional(prefix string, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = prefix + strconv.Itoa(i)
	}
	return names
}
