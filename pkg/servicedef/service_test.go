package servicedef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/servicedef/pkg/token"
)

func widgetServiceDef() ServiceDef {
	return ServiceDef{
		Name: "WidgetApi",
		Pos:  token.Position{File: "widgets.fsd", Line: 1, Column: 1},
		Members: []Member{
			&Method{
				MemberInfo:    MemberInfo{Name: "getWidget", Pos: token.Position{Line: 3}},
				RequestFields: []Field{fieldAt("id", "string", 4)},
				ResponseFields: []Field{
					fieldAt("widget", "Widget", 6),
				},
			},
			&Dto{
				MemberInfo: MemberInfo{Name: "Widget", Pos: token.Position{Line: 9}},
				Fields: []Field{
					fieldAt("id", "string", 10),
					fieldAt("color", "Color", 11),
					fieldAt("tags", "string[]", 12),
				},
			},
			&Enum{
				MemberInfo: MemberInfo{Name: "Color", Pos: token.Position{Line: 15}},
				Values: []EnumValue{
					{Name: "red", Pos: token.Position{Line: 16}},
					{Name: "green", Pos: token.Position{Line: 17}},
				},
			},
			&ErrorSet{
				MemberInfo: MemberInfo{Name: "WidgetError", Pos: token.Position{Line: 20}},
				Errors: []ErrorValue{
					{Name: "notFound", Code: "404", Pos: token.Position{Line: 21}},
				},
			},
		},
	}
}

func TestNewServiceValid(t *testing.T) {
	svc := NewService(widgetServiceDef())
	assert.Empty(t, svc.ValidationErrors())
	assert.NoError(t, svc.Validate())
}

func TestTypedViewsPartitionMembers(t *testing.T) {
	svc := NewService(widgetServiceDef())

	methods := svc.Methods()
	dtos := svc.Dtos()
	enums := svc.Enums()
	errorSets := svc.ErrorSets()

	assert.Len(t, svc.Members(), len(methods)+len(dtos)+len(enums)+len(errorSets))

	// Each member appears in exactly one view.
	seen := make(map[Member]bool)
	for _, m := range methods {
		seen[m] = true
	}
	for _, d := range dtos {
		seen[d] = true
	}
	for _, e := range enums {
		seen[e] = true
	}
	for _, s := range errorSets {
		seen[s] = true
	}
	assert.Len(t, seen, len(svc.Members()))
	for _, m := range svc.Members() {
		assert.True(t, seen[m])
	}
}

func TestFindMember(t *testing.T) {
	svc := NewService(widgetServiceDef())

	m, ok := svc.FindMember("Widget")
	require.True(t, ok)
	assert.Equal(t, KindDto, m.Kind())
	assert.Equal(t, "Widget", m.MemberName())

	_, ok = svc.FindMember("Gadget")
	assert.False(t, ok)
}

func TestCrossKindDuplicateMembers(t *testing.T) {
	// Two members named Widget, one a DTO and one an enum. Each is valid on
	// its own; the collision is a whole-service error.
	svc := NewService(ServiceDef{
		Name: "WidgetApi",
		Members: []Member{
			&Dto{MemberInfo: MemberInfo{Name: "Widget", Pos: token.Position{Line: 3}}},
			&Enum{MemberInfo: MemberInfo{Name: "Widget", Pos: token.Position{Line: 7}}},
		},
	})

	errs := svc.ValidationErrors()
	require.Len(t, errs, 1)
	assert.Equal(t, ErrDuplicateName, errs[0].Code)
	assert.Equal(t, `duplicate service member name "Widget"`, errs[0].Message)
	assert.Equal(t, 7, errs[0].Pos.Line)

	// Lookup among duplicates is unspecified but must return a member with
	// the requested name.
	m, ok := svc.FindMember("Widget")
	require.True(t, ok)
	assert.Equal(t, "Widget", m.MemberName())
}

func TestStrictConstruction(t *testing.T) {
	def := widgetServiceDef()
	def.Members = append(def.Members, &Dto{
		MemberInfo: MemberInfo{Name: "1stWidget", Pos: token.Position{Line: 24}},
	})

	t.Run("strict mode fails construction", func(t *testing.T) {
		svc, err := NewValidService(def)
		assert.Nil(t, svc)
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, ErrInvalidName, verr.Code)
	})

	t.Run("non-strict mode defers the error", func(t *testing.T) {
		svc := NewService(def)
		require.NotNil(t, svc)

		errs := svc.ValidationErrors()
		require.Len(t, errs, 1)
		assert.Equal(t, ErrInvalidName, errs[0].Code)
		assert.Equal(t, `invalid name "1stWidget"`, errs[0].Message)
	})
}

func TestUnsupportedMember(t *testing.T) {
	svc := NewService(ServiceDef{
		Name:    "WidgetApi",
		Members: []Member{nil},
	})

	errs := svc.ValidationErrors()
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnsupportedMember, errs[0].Code)
}

func TestFieldTypeResolutionErrors(t *testing.T) {
	def := widgetServiceDef()
	def.Members = append(def.Members,
		&Dto{
			MemberInfo: MemberInfo{Name: "Gadget", Pos: token.Position{Line: 24}},
			Fields: []Field{
				fieldAt("widget", "Widget", 25),
				fieldAt("missing", "Sprocket", 26),
				fieldAt("verb", "getWidget", 27),
			},
		},
	)
	svc := NewService(def)

	errs := svc.ValidationErrors()
	require.Len(t, errs, 2)
	assert.Equal(t, ErrUnknownType, errs[0].Code)
	assert.Equal(t, 26, errs[0].Pos.Line)
	assert.Equal(t, ErrInvalidTypeReference, errs[1].Code)
	assert.Equal(t, `method "getWidget" cannot be used as a field type`, errs[1].Message)
}

func TestValidationErrorOrder(t *testing.T) {
	// One error from every stage, declared out of stage order: the result
	// must follow the fixed validation order, not declaration order.
	svc := NewService(ServiceDef{
		Name: "widget api", // stage 1: invalid service name
		Members: []Member{
			&Enum{
				MemberInfo: MemberInfo{Name: "Color", Pos: token.Position{Line: 2}},
				Values: []EnumValue{
					{Name: "red", Pos: token.Position{Line: 3}},
					{Name: "red", Pos: token.Position{Line: 4}}, // stage 5: enum local
				},
			},
			&Dto{
				MemberInfo: MemberInfo{Name: "Widget", Pos: token.Position{Line: 6}},
				Fields:     []Field{fieldAt("part", "Sprocket", 7)}, // stage 4: unknown type
			},
			&Dto{MemberInfo: MemberInfo{Name: "Color", Pos: token.Position{Line: 9}}}, // stage 3: duplicate
			nil, // stage 2: unsupported member
		},
	})

	var codes []ErrorCode
	for _, e := range svc.ValidationErrors() {
		codes = append(codes, e.Code)
	}
	assert.Equal(t, []ErrorCode{
		ErrInvalidName,
		ErrUnsupportedMember,
		ErrDuplicateName,
		ErrUnknownType,
		ErrDuplicateName,
	}, codes)
}

func TestServiceTypeQueries(t *testing.T) {
	svc := NewService(widgetServiceDef())

	t.Run("TypeOf", func(t *testing.T) {
		rt, err := svc.TypeOf("nullable<Widget>")
		require.NoError(t, err)
		assert.Equal(t, TypeNullable, rt.Kind)
		assert.Equal(t, TypeDto, rt.Element.Kind)

		rt, err = svc.TypeOf("Sprocket")
		assert.Nil(t, rt)
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, ErrUnknownType, verr.Code)
	})

	t.Run("MustTypeOf", func(t *testing.T) {
		assert.Equal(t, "Widget[]", svc.MustTypeOf("Widget[]").String())
		assert.Panics(t, func() { svc.MustTypeOf("Sprocket") })
	})

	t.Run("FieldType carries the field position", func(t *testing.T) {
		f := fieldAt("part", "Sprocket", 26)
		_, err := svc.FieldType(f)
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, f.Pos, verr.Pos)
	})

	t.Run("MustFieldType", func(t *testing.T) {
		f := fieldAt("tags", "string[]", 12)
		assert.Equal(t, TypeArray, svc.MustFieldType(f).Kind)
		assert.Panics(t, func() { svc.MustFieldType(fieldAt("part", "Sprocket", 26)) })
	})
}

func TestValidationIsRepeatable(t *testing.T) {
	def := widgetServiceDef()
	def.Members = append(def.Members, &Dto{
		MemberInfo: MemberInfo{Name: "Widget", Pos: token.Position{Line: 24}},
	})
	svc := NewService(def)

	first := svc.ValidationErrors()
	second := svc.ValidationErrors()
	assert.Equal(t, first, second)
}
