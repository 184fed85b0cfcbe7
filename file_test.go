package calljen

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestFileExists(t *testing.T) {
	is := is.New(t)
	is.True(File{RelativePath: "a", Data: []byte("x")}.Exists())
	is.True(!File{RelativePath: "a"}.Exists())
	is.True(!File{Data: []byte("x")}.Exists())
}

func TestFilesValidate(t *testing.T) {
	is := is.New(t)

	is.NoErr(Files{
		{RelativePath: "a", Data: []byte("1")},
		{RelativePath: "b", Data: []byte("2")},
	}.Validate())

	err := Files{
		{RelativePath: "a", Data: []byte("1"), From: []NamedJenny{namedOnly{}}},
		{RelativePath: "a", Data: []byte("2"), From: []NamedJenny{countJenny{}}},
		{RelativePath: "", Data: []byte("3")},
	}.Validate()
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "a generated by both namedOnly and countJenny"))
	is.True(strings.Contains(err.Error(), "has no path"))
}
