package servicedef

import "github.com/leapstack-labs/servicedef/pkg/token"

// Attribute is a named piece of metadata attached to a service, member,
// field, or value. Attributes are opaque to this package; code generators
// iterate them to drive output-specific behavior.
type Attribute struct {
	Name       string
	Parameters []AttributeParameter
	Pos        token.Position
}

// AttributeParameter is one key/value pair of an attribute, e.g. the
// code: 404 in [http(code: 404)].
type AttributeParameter struct {
	Name  string
	Value string
	Pos   token.Position
}

// Parameter returns the value of the named parameter, if present.
func (a Attribute) Parameter(name string) (string, bool) {
	for _, p := range a.Parameters {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}
