package calljen

// OneToMany is a Jenny that accepts one input and produces zero to N files.
type OneToMany[Input any] interface {
	Jenny[Input]

	// Generate takes an Input and generates many [File]s, or none (nil) if the
	// jenny was a no-op for the provided Input.
	Generate(Input) (Files, error)
}

type o2mAdapt[AdaptedInput, OriginalInput any] struct {
	fn func(AdaptedInput) OriginalInput
	j  OneToMany[OriginalInput]
}

func (oa *o2mAdapt[AdaptedInput, OriginalInput]) JennyName() string {
	return oa.j.JennyName()
}

func (oa *o2mAdapt[AdaptedInput, OriginalInput]) Generate(t AdaptedInput) (Files, error) {
	return oa.j.Generate(oa.fn(t))
}

// AdaptOneToMany takes a OneToMany jenny that accepts a particular type as
// input (OriginalInput), and transforms it into a jenny that accepts a
// different type as input (AdaptedInput), given a function that can transform
// an AdaptedInput to an OriginalInput.
func AdaptOneToMany[AdaptedInput, OriginalInput any](j OneToMany[OriginalInput], fn func(AdaptedInput) OriginalInput) OneToMany[AdaptedInput] {
	return &o2mAdapt[AdaptedInput, OriginalInput]{
		fn: fn,
		j:  j,
	}
}
