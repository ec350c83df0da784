package servicedef

import "github.com/leapstack-labs/servicedef/pkg/token"

// ServiceDef carries the already-parsed data a service is constructed from.
type ServiceDef struct {
	Name       string
	Members    []Member
	Attributes []Attribute
	Summary    string
	Remarks    []string
	Pos        token.Position
}

// Service is the root of a service-interface definition: the ordered,
// heterogeneous list of members plus the service's own name and metadata.
// A service exclusively owns its members; treat the graph as read-only once
// constructed.
type Service struct {
	Name       string
	Attributes []Attribute
	Summary    string
	Remarks    []string
	Pos        token.Position

	members []Member
	byName  map[string]Member
}

// NewService builds a service from already-parsed definition data and
// indexes its members by name. It never fails: the returned service may be
// invalid, and ValidationErrors reports every problem found.
func NewService(def ServiceDef) *Service {
	s := &Service{
		Name:       def.Name,
		Attributes: def.Attributes,
		Summary:    def.Summary,
		Remarks:    def.Remarks,
		Pos:        def.Pos,
		members:    append([]Member(nil), def.Members...),
		byName:     make(map[string]Member, len(def.Members)),
	}
	for _, m := range s.members {
		if m == nil {
			continue
		}
		// First declaration wins. Duplicate member names are a validation
		// error, and lookup among duplicates is unspecified.
		if _, ok := s.byName[m.MemberName()]; !ok {
			s.byName[m.MemberName()] = m
		}
	}
	return s
}

// NewValidService builds a service and fails on the first validation error
// in the definition. This is the strict construction mode; NewService is the
// deferred-validation mode.
func NewValidService(def ServiceDef) (*Service, error) {
	s := NewService(def)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Members returns the full member list in declaration order.
func (s *Service) Members() []Member { return s.members }

// Methods returns the service's methods in declaration order. Like the
// other typed views, it is derived from the member list on every call.
func (s *Service) Methods() []*Method {
	var out []*Method
	for _, m := range s.members {
		if v, ok := m.(*Method); ok {
			out = append(out, v)
		}
	}
	return out
}

// Dtos returns the service's DTOs in declaration order.
func (s *Service) Dtos() []*Dto {
	var out []*Dto
	for _, m := range s.members {
		if v, ok := m.(*Dto); ok {
			out = append(out, v)
		}
	}
	return out
}

// Enums returns the service's enums in declaration order.
func (s *Service) Enums() []*Enum {
	var out []*Enum
	for _, m := range s.members {
		if v, ok := m.(*Enum); ok {
			out = append(out, v)
		}
	}
	return out
}

// ErrorSets returns the service's error sets in declaration order.
func (s *Service) ErrorSets() []*ErrorSet {
	var out []*ErrorSet
	for _, m := range s.members {
		if v, ok := m.(*ErrorSet); ok {
			out = append(out, v)
		}
	}
	return out
}

// FindMember looks up a member by name in O(1).
func (s *Service) FindMember(name string) (Member, bool) {
	m, ok := s.byName[name]
	return m, ok
}

func (s *Service) lookup(name string) Member {
	return s.byName[name]
}

// TypeOf resolves a textual type reference against the service's members.
func (s *Service) TypeOf(typeName string) (*ResolvedType, error) {
	t, verr := ResolveType(typeName, s.lookup, token.Position{})
	if verr != nil {
		return nil, verr
	}
	return t, nil
}

// MustTypeOf is TypeOf for callers that treat resolution failure as a
// programming error; it panics instead of returning an error.
func (s *Service) MustTypeOf(typeName string) *ResolvedType {
	t, err := s.TypeOf(typeName)
	if err != nil {
		panic(err)
	}
	return t
}

// FieldType resolves a field's declared type against the service's members.
// Errors carry the field's position.
func (s *Service) FieldType(f Field) (*ResolvedType, error) {
	t, verr := ResolveType(f.TypeName, s.lookup, f.Pos)
	if verr != nil {
		return nil, verr
	}
	return t, nil
}

// MustFieldType is FieldType for callers that treat resolution failure as a
// programming error; it panics instead of returning an error.
func (s *Service) MustFieldType(f Field) *ResolvedType {
	t, err := s.FieldType(f)
	if err != nil {
		panic(err)
	}
	return t
}

// ValidationErrors returns every validation error in the definition, in a
// fixed order: service name, unsupported member kinds, cross-member
// duplicate names, field type resolution for every method (request then
// response) then every DTO, and finally each member kind's local validation
// (methods, then DTOs, then enums, then error sets), each in declaration
// order. It never panics, mutates nothing, and is safe to call repeatedly.
func (s *Service) ValidationErrors() []*ValidationError {
	var errs []*ValidationError

	if e := validateName(s.Name, s.Pos); e != nil {
		errs = append(errs, e)
	}

	// Unreachable through the public constructors, since Member is a closed
	// interface, but a nil member still slips through a []Member literal.
	for _, m := range s.members {
		switch m.(type) {
		case *Method, *Dto, *Enum, *ErrorSet:
		default:
			errs = append(errs, newError(ErrUnsupportedMember, s.Pos, "unsupported service member kind"))
		}
	}

	items := make([]namedItem, 0, len(s.members))
	for _, m := range s.members {
		if m == nil {
			continue
		}
		items = append(items, namedItem{name: m.MemberName(), pos: m.MemberPos()})
	}
	errs = append(errs, duplicateNames("service member", items)...)

	methods := s.Methods()
	dtos := s.Dtos()
	for _, m := range methods {
		errs = append(errs, s.fieldTypeErrors(m.RequestFields)...)
		errs = append(errs, s.fieldTypeErrors(m.ResponseFields)...)
	}
	for _, d := range dtos {
		errs = append(errs, s.fieldTypeErrors(d.Fields)...)
	}

	for _, m := range methods {
		errs = append(errs, m.validate()...)
	}
	for _, d := range dtos {
		errs = append(errs, d.validate()...)
	}
	for _, e := range s.Enums() {
		errs = append(errs, e.validate()...)
	}
	for _, es := range s.ErrorSets() {
		errs = append(errs, es.validate()...)
	}
	return errs
}

func (s *Service) fieldTypeErrors(fields []Field) []*ValidationError {
	var errs []*ValidationError
	for _, f := range fields {
		if _, err := ResolveType(f.TypeName, s.lookup, f.Pos); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Validate returns the first validation error in the definition, or nil
// when the definition is valid.
func (s *Service) Validate() error {
	if errs := s.ValidationErrors(); len(errs) > 0 {
		return errs[0]
	}
	return nil
}
