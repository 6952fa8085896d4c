// Package profile holds the static, generated-style tables that map FIT
// global message and field numbers to symbolic names, and enum values to
// variant names. It is deliberately free of any decode logic: the
// decoder consults a Profile the way a generated protocol schema is
// consulted by a hand-written decoder. The default tables are compiled
// in (Default); Load reads an alternate table from a JSON schema file.
package profile

// FieldDef is one field of a message definition, as known to the
// profile: its wire number, symbolic name, numeric scale/offset, and any
// subfields that refine its name based on a companion field's value.
type FieldDef struct {
	Num       uint8
	Name      string
	Scale     float64
	Offset    float64
	// Enum names the enum table (see Profile.EnumVariant) this field's
	// raw integer value indexes, or "" if the field isn't enum-valued.
	Enum      string
	Subfields []SubfieldDef
}

// SubfieldRef names a (field, value) pair that must match for a
// subfield to apply.
type SubfieldRef struct {
	FieldName string
	Value     uint64
}

// SubfieldDef is one candidate rename for a dynamic field: when every
// entry in References matches the message's other field values, the
// field is reinterpreted under Name instead of its base FieldDef.Name.
type SubfieldDef struct {
	Name       string
	References []SubfieldRef
}

// MesgDef is one message definition known to the profile: its wire
// global message number, symbolic name, and field table.
type MesgDef struct {
	Num    uint16
	Name   string
	Fields []FieldDef
}

// FieldByNum returns the field definition for a wire field number.
func (m MesgDef) FieldByNum(num uint8) (FieldDef, bool) {
	for _, f := range m.Fields {
		if f.Num == num {
			return f, true
		}
	}
	return FieldDef{}, false
}

// Profile is a queryable set of message/field/enum tables. The zero
// value is empty; use Default() for the built-in table or Load (in
// load.go) to read one from a JSON schema file.
type Profile struct {
	messages map[uint16]MesgDef
	enums    map[string]map[uint32]string
}

// New builds a Profile from explicit message and enum tables. Used by
// both Default (compiled-in table) and Load (schema file).
func New(messages []MesgDef, enums map[string]map[uint32]string) Profile {
	p := Profile{
		messages: make(map[uint16]MesgDef, len(messages)),
		enums:    enums,
	}
	for _, m := range messages {
		p.messages[m.Num] = m
	}
	if p.enums == nil {
		p.enums = make(map[string]map[uint32]string)
	}
	return p
}

// Message returns the message definition for a global message number.
func (p Profile) Message(num uint16) (MesgDef, bool) {
	m, ok := p.messages[num]
	return m, ok
}

// Field returns a message's field definition for a field number.
func (p Profile) Field(mesgNum uint16, fieldNum uint8) (FieldDef, bool) {
	m, ok := p.messages[mesgNum]
	if !ok {
		return FieldDef{}, false
	}
	return m.FieldByNum(fieldNum)
}

// EnumVariant returns the symbolic name of value within the named enum.
func (p Profile) EnumVariant(enumName string, value uint32) (string, bool) {
	table, ok := p.enums[enumName]
	if !ok {
		return "", false
	}
	name, ok := table[value]
	return name, ok
}

// Default returns the compiled-in profile table (profile/messages.go,
// profile/enums.go).
func Default() Profile {
	return New(defaultMessages, defaultEnums)
}
