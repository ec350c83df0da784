package servicedef

import "github.com/leapstack-labs/servicedef/pkg/token"

// Field is a named, typed slot within a DTO or a method's request or
// response. TypeName holds the textual type reference as written in the
// definition; resolve it with Service.FieldType or ResolveType.
type Field struct {
	Name       string
	TypeName   string
	Attributes []Attribute
	Summary    string
	Remarks    []string
	Pos        token.Position
}

// validateFields checks field name grammar and duplicate names within one
// field list. The kind label names the list in error messages.
func validateFields(kind string, fields []Field) []*ValidationError {
	var errs []*ValidationError
	for _, f := range fields {
		if e := validateName(f.Name, f.Pos); e != nil {
			errs = append(errs, e)
		}
	}
	return append(errs, duplicateNames(kind, fieldItems(fields))...)
}

func fieldItems(fields []Field) []namedItem {
	items := make([]namedItem, len(fields))
	for i, f := range fields {
		items[i] = namedItem{name: f.Name, pos: f.Pos}
	}
	return items
}
