package fit

import "fmt"

// MessageKind identifies the semantic kind of a decoded message. Num is
// always the wire global message number; Name is populated from the
// profile when known and left empty otherwise — an unrecognised global
// message number is recorded in-band, never an error.
type MessageKind struct {
	Num  uint16
	Name string
}

// Known reports whether the profile recognised this message number.
func (k MessageKind) Known() bool { return k.Name != "" }

func (k MessageKind) String() string {
	if k.Name != "" {
		return k.Name
	}
	return fmt.Sprintf("unknown_mesg_%d", k.Num)
}

// FieldKind identifies the semantic identity of a field within a
// message. Num is the wire field definition number; Name is populated
// from the profile (or rewritten by the subfield resolver) and left
// empty when unrecognised.
type FieldKind struct {
	Num  uint8
	Name string
}

func (k FieldKind) Known() bool { return k.Name != "" }

func (k FieldKind) String() string {
	if k.Name != "" {
		return k.Name
	}
	return fmt.Sprintf("unknown_field_%d", k.Num)
}

// DataField is one decoded field of a DataMessage: its symbolic kind
// plus the (possibly multi-element) decoded values.
type DataField struct {
	Kind   FieldKind
	Values []DataValue
	// EnumName is the resolved enum variant name for Value(), populated
	// only when the Decoder was configured with ResolveEnums and the
	// profile declares an enum table for this field.
	EnumName string
}

// Value returns the first decoded value, or an invalid DataValue if the
// field has none.
func (f DataField) Value() DataValue {
	if len(f.Values) == 0 {
		return DataValue{Kind: ValueInvalid}
	}
	return f.Values[0]
}

// DataMessage is one decoded FIT data record: a message kind plus its
// ordered fields, in wire order.
type DataMessage struct {
	Kind   MessageKind
	Fields []DataField
}

// FieldByKind returns the first field matching kind's name (for known
// kinds) or number (for unknown kinds).
func (m DataMessage) FieldByKind(kind FieldKind) (DataField, bool) {
	for _, f := range m.Fields {
		if kind.Known() {
			if f.Kind.Name == kind.Name {
				return f, true
			}
			continue
		}
		if f.Kind.Num == kind.Num && f.Kind.Name == "" {
			return f, true
		}
	}
	return DataField{}, false
}

// FieldByName returns the first field whose symbolic name matches name.
func (m DataMessage) FieldByName(name string) (DataField, bool) {
	for _, f := range m.Fields {
		if f.Kind.Name == name {
			return f, true
		}
	}
	return DataField{}, false
}
