package servicedef

// Dto is a data-transfer object: a named record of fields.
type Dto struct {
	MemberInfo
	Fields []Field
}

func (*Dto) memberNode() {}

// Kind returns KindDto.
func (*Dto) Kind() MemberKind { return KindDto }

func (d *Dto) validate() []*ValidationError {
	var errs []*ValidationError
	if e := validateName(d.Name, d.Pos); e != nil {
		errs = append(errs, e)
	}
	return append(errs, validateFields("field", d.Fields)...)
}
