package servicedef

import "github.com/leapstack-labs/servicedef/pkg/token"

// Enum is a named, ordered set of enumerated values.
type Enum struct {
	MemberInfo
	Values []EnumValue
}

// EnumValue is one named value of an enum.
type EnumValue struct {
	Name       string
	Attributes []Attribute
	Summary    string
	Remarks    []string
	Pos        token.Position
}

func (*Enum) memberNode() {}

// Kind returns KindEnum.
func (*Enum) Kind() MemberKind { return KindEnum }

func (e *Enum) validate() []*ValidationError {
	var errs []*ValidationError
	if err := validateName(e.Name, e.Pos); err != nil {
		errs = append(errs, err)
	}
	items := make([]namedItem, len(e.Values))
	for i, v := range e.Values {
		if err := validateName(v.Name, v.Pos); err != nil {
			errs = append(errs, err)
		}
		items[i] = namedItem{name: v.Name, pos: v.Pos}
	}
	return append(errs, duplicateNames("enum value", items)...)
}
