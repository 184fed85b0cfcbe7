// Package calljen is a small framework for go generate-style code
// generators, used by package callgen to emit generic call wrappers.
//
// Generators are written as jennies: small types that turn one or many
// inputs into one or many [File]s. A [JennyList] runs jennies in order,
// postprocesses their output and collects it into an [FS], which can either
// be written to disk or verified against what is already there.
package calljen
