package servicedef

import "github.com/leapstack-labs/servicedef/pkg/token"

// ErrorSet is a named, ordered set of errors a service can report.
type ErrorSet struct {
	MemberInfo
	Errors []ErrorValue
}

// ErrorValue is one named error within an error set. Code optionally carries
// a numeric or string error code for the wire format; empty means no code.
type ErrorValue struct {
	Name       string
	Code       string
	Attributes []Attribute
	Summary    string
	Remarks    []string
	Pos        token.Position
}

func (*ErrorSet) memberNode() {}

// Kind returns KindErrorSet.
func (*ErrorSet) Kind() MemberKind { return KindErrorSet }

func (s *ErrorSet) validate() []*ValidationError {
	var errs []*ValidationError
	if err := validateName(s.Name, s.Pos); err != nil {
		errs = append(errs, err)
	}
	items := make([]namedItem, len(s.Errors))
	for i, v := range s.Errors {
		if err := validateName(v.Name, v.Pos); err != nil {
			errs = append(errs, err)
		}
		items[i] = namedItem{name: v.Name, pos: v.Pos}
	}
	return append(errs, duplicateNames("error", items)...)
}
