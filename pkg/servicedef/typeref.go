package servicedef

import (
	"strings"

	"github.com/leapstack-labs/servicedef/pkg/token"
)

// Type reference parsing.
//
// Grammar:
//
//	type      → primitive | member | "nullable" "<" type ">" | array | map
//	array     → type "[]" | "array" "<" type ">"
//	map       → "map" "<" "string" "," type ">"
//	primitive → "string" | "boolean" | "int32" | "int64" | "double"
//	          | "decimal" | "bytes" | "object"
//	member    → identifier naming a DTO, enum, or error set

// TypeKind identifies the shape of a resolved type.
type TypeKind string

// TypeKind constants for resolved types.
const (
	TypeString   TypeKind = "string"
	TypeBoolean  TypeKind = "boolean"
	TypeInt32    TypeKind = "int32"
	TypeInt64    TypeKind = "int64"
	TypeDouble   TypeKind = "double"
	TypeDecimal  TypeKind = "decimal"
	TypeBytes    TypeKind = "bytes"
	TypeObject   TypeKind = "object"
	TypeDto      TypeKind = "dto"
	TypeEnum     TypeKind = "enum"
	TypeErrorSet TypeKind = "errorSet"
	TypeNullable TypeKind = "nullable"
	TypeArray    TypeKind = "array"
	TypeMap      TypeKind = "map"
)

// primitives is the closed set of primitive type keywords.
var primitives = map[string]TypeKind{
	"string":  TypeString,
	"boolean": TypeBoolean,
	"int32":   TypeInt32,
	"int64":   TypeInt64,
	"double":  TypeDouble,
	"decimal": TypeDecimal,
	"bytes":   TypeBytes,
	"object":  TypeObject,
}

// ResolvedType is the structured result of parsing a field's textual type
// reference.
type ResolvedType struct {
	Kind TypeKind

	// Member is the referenced service member for TypeDto, TypeEnum, and
	// TypeErrorSet; nil otherwise.
	Member Member

	// Element is the wrapped type for TypeNullable and TypeArray, and the
	// value type for TypeMap (map keys are always strings); nil otherwise.
	Element *ResolvedType
}

// String renders the type in its canonical textual form.
func (t *ResolvedType) String() string {
	switch t.Kind {
	case TypeNullable:
		return "nullable<" + t.Element.String() + ">"
	case TypeArray:
		return t.Element.String() + "[]"
	case TypeMap:
		return "map<string," + t.Element.String() + ">"
	case TypeDto, TypeEnum, TypeErrorSet:
		return t.Member.MemberName()
	default:
		return string(t.Kind)
	}
}

// MemberLookup finds a service member by name. It returns nil when the name
// matches no member.
type MemberLookup func(name string) Member

// ResolveType parses a textual type reference into a resolved type
// descriptor, looking bare identifiers up through the supplied lookup
// function. The pos is attached to any error for reporting.
//
// Resolution is purely functional: the same type name against the same
// member set always yields the same result, nothing is cached or mutated,
// and concurrent calls are safe.
func ResolveType(typeName string, lookup MemberLookup, pos token.Position) (*ResolvedType, *ValidationError) {
	name := strings.TrimSpace(typeName)
	if name == "" {
		return nil, newError(ErrMalformedTypeSyntax, pos, "missing type name")
	}

	if inner, ok := strings.CutSuffix(name, "[]"); ok {
		element, err := ResolveType(inner, lookup, pos)
		if err != nil {
			return nil, err
		}
		return &ResolvedType{Kind: TypeArray, Element: element}, nil
	}

	if open := strings.IndexByte(name, '<'); open >= 0 {
		if name[len(name)-1] != '>' {
			return nil, newError(ErrMalformedTypeSyntax, pos, "malformed type %q", name)
		}
		decorator, body := name[:open], name[open+1:len(name)-1]
		switch decorator {
		case "nullable":
			element, err := ResolveType(body, lookup, pos)
			if err != nil {
				return nil, err
			}
			return &ResolvedType{Kind: TypeNullable, Element: element}, nil

		case "array":
			element, err := ResolveType(body, lookup, pos)
			if err != nil {
				return nil, err
			}
			return &ResolvedType{Kind: TypeArray, Element: element}, nil

		case "map":
			key, value, ok := splitMapBody(body)
			if !ok {
				return nil, newError(ErrMalformedTypeSyntax, pos, "map type %q must have a key and a value", name)
			}
			if k := strings.TrimSpace(key); k != "string" {
				return nil, newError(ErrInvalidTypeReference, pos, "map key type must be string, not %q", k)
			}
			element, err := ResolveType(value, lookup, pos)
			if err != nil {
				return nil, err
			}
			return &ResolvedType{Kind: TypeMap, Element: element}, nil

		default:
			return nil, newError(ErrMalformedTypeSyntax, pos, "unknown type decorator %q", decorator)
		}
	}

	if kind, ok := primitives[name]; ok {
		return &ResolvedType{Kind: kind}, nil
	}
	if !validName(name) {
		return nil, newError(ErrMalformedTypeSyntax, pos, "malformed type %q", name)
	}

	member := lookup(name)
	if member == nil {
		return nil, newError(ErrUnknownType, pos, "unknown type %q", name)
	}
	switch member.Kind() {
	case KindDto:
		return &ResolvedType{Kind: TypeDto, Member: member}, nil
	case KindEnum:
		return &ResolvedType{Kind: TypeEnum, Member: member}, nil
	case KindErrorSet:
		return &ResolvedType{Kind: TypeErrorSet, Member: member}, nil
	default:
		return nil, newError(ErrInvalidTypeReference, pos, "%s %q cannot be used as a field type", member.Kind(), name)
	}
}

// splitMapBody splits a map body at its first top-level comma, ignoring
// commas nested inside angle brackets.
func splitMapBody(body string) (key, value string, ok bool) {
	depth := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				return body[:i], body[i+1:], true
			}
		}
	}
	return "", "", false
}
