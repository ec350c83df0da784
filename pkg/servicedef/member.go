package servicedef

import "github.com/leapstack-labs/servicedef/pkg/token"

// MemberKind identifies one of the four kinds of service member.
type MemberKind string

// MemberKind constants. The strings double as the kind labels used in
// validation messages.
const (
	KindMethod   MemberKind = "method"
	KindDto      MemberKind = "DTO"
	KindEnum     MemberKind = "enum"
	KindErrorSet MemberKind = "error set"
)

// Member is a named top-level entity of a service: a method, DTO, enum, or
// error set. The interface is closed; only the four member types in this
// package implement it.
type Member interface {
	// MemberName returns the member's declared name.
	MemberName() string

	// MemberPos returns the member's source position.
	MemberPos() token.Position

	// Kind returns the member's kind.
	Kind() MemberKind

	// validate reports the member's local validation errors: its own name
	// grammar plus name grammar and duplicate detection within its field or
	// value lists. Type references are resolved at the service level.
	validate() []*ValidationError

	memberNode()
}

// MemberInfo provides the fields common to all service members.
// Embed this in member types.
type MemberInfo struct {
	Name       string
	Attributes []Attribute
	Summary    string
	Remarks    []string
	Pos        token.Position
}

// MemberName returns the member's declared name.
func (m *MemberInfo) MemberName() string { return m.Name }

// MemberPos returns the member's source position.
func (m *MemberInfo) MemberPos() token.Position { return m.Pos }
