package servicedef

// Method is a service operation with independent request and response field
// lists. A method cannot be referenced as a field type.
type Method struct {
	MemberInfo
	RequestFields  []Field
	ResponseFields []Field
}

func (*Method) memberNode() {}

// Kind returns KindMethod.
func (*Method) Kind() MemberKind { return KindMethod }

func (m *Method) validate() []*ValidationError {
	var errs []*ValidationError
	if e := validateName(m.Name, m.Pos); e != nil {
		errs = append(errs, e)
	}
	// Request and response lists are validated independently; the same name
	// may appear in both.
	errs = append(errs, validateFields("request field", m.RequestFields)...)
	errs = append(errs, validateFields("response field", m.ResponseFields)...)
	return errs
}
