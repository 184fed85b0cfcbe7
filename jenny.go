package calljen

// A Jenny is a calljen code generator.
//
// Each Jenny works with exactly one type of input to its code generation, as
// indicated by type parameter. calljen follows the convention of naming these
// type parameters "Input" as an indicator for humans that a particular type
// parameter is used in this way.
//
// Each Jenny takes either one or many Inputs, and produces zero, one, or many
// output files. Small jennies with narrow responsibilities are composed into
// larger generators with [JennyList].
//
// Go's generic system does not allow expressing the union of the individual
// kinds of Jennies as part of the Jenny interface itself, so every Jenny must
// additionally implement one of [OneToOne], [OneToMany], [ManyToOne] or
// [ManyToMany].
type Jenny[Input any] interface {
	NamedJenny
}

// NamedJenny includes just the JennyName method. It is the non-generic part
// of [Jenny], used where the Input type does not matter.
type NamedJenny interface {
	// JennyName returns the name of the generator.
	JennyName() string
}
