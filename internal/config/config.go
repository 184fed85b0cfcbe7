// Package config loads the calljen.yaml manifest used by `calljen generate`.
//
// The manifest only says where generated code goes. The shape of each
// profile (its bounds and extraction style) is fixed in package callgen and
// cannot be changed from here.
package config

import (
	"bytes"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/sdboyer/calljen/callgen"
)

// DefaultPath is the manifest file name looked up when none is given.
const DefaultPath = "calljen.yaml"

// Manifest is the decoded contents of a calljen.yaml file.
type Manifest struct {
	Targets []callgen.Target `yaml:"targets"`

	// Root is the directory target outputs are relative to. It is the
	// directory holding the manifest file.
	Root string `yaml:"-"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	b, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest %s", path)
	}

	m, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "manifest %s", path)
	}
	m.Root = filepath.Dir(path)
	return m, nil
}

// Parse decodes and validates a manifest. Unknown fields are rejected.
func Parse(b []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, errors.Wrap(err, "decoding yaml")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks every target and reports all problems at once.
func (m *Manifest) Validate() error {
	if len(m.Targets) == 0 {
		return errors.New("no targets declared")
	}

	var result *multierror.Error
	outputs := make(map[string]int, len(m.Targets))
	for i, t := range m.Targets {
		if _, ok := callgen.LookupProfile(t.Profile); !ok {
			result = multierror.Append(result, errors.Newf("target %d: unknown profile %q", i, t.Profile))
		}
		if !token.IsIdentifier(t.Package) {
			result = multierror.Append(result, errors.Newf("target %d: %q is not a valid package name", i, t.Package))
		}

		switch {
		case t.Output == "":
			result = multierror.Append(result, errors.Newf("target %d: output is required", i))
		case filepath.IsAbs(t.Output):
			result = multierror.Append(result, errors.Newf("target %d: output %s must be relative", i, t.Output))
		case !strings.HasSuffix(t.Output, ".go"):
			result = multierror.Append(result, errors.Newf("target %d: output %s must be a .go file", i, t.Output))
		default:
			out := filepath.Clean(t.Output)
			if j, dup := outputs[out]; dup {
				result = multierror.Append(result, errors.Newf("target %d: output %s already used by target %d", i, t.Output, j))
			}
			outputs[out] = i
		}
	}
	return result.ErrorOrNil()
}
