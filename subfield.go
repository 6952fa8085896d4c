package fit

import "github.com/aldas/go-fit-decoder/profile"

// resolveFieldKind picks the symbolic kind a field decodes under: its
// base profile name, or a subfield's name when every one of the
// subfield's (companion field, value) references matches a field
// already decoded earlier in the same message. Earlier in wire order is
// required because subfields key off fields like Event that always
// precede the data field they qualify.
func resolveFieldKind(fd profile.FieldDef, decodedSoFar []DataField) FieldKind {
	for _, sf := range fd.Subfields {
		if subfieldMatches(sf, decodedSoFar) {
			return FieldKind{Num: fd.Num, Name: sf.Name}
		}
	}
	return FieldKind{Num: fd.Num, Name: fd.Name}
}

func subfieldMatches(sf profile.SubfieldDef, decodedSoFar []DataField) bool {
	for _, ref := range sf.References {
		if !fieldHasValue(decodedSoFar, ref.FieldName, ref.Value) {
			return false
		}
	}
	return len(sf.References) > 0
}

func fieldHasValue(fields []DataField, name string, value uint64) bool {
	for _, f := range fields {
		if f.Kind.Name != name {
			continue
		}
		for _, v := range f.Values {
			if v.Kind == ValueUint && v.Uint == value {
				return true
			}
		}
	}
	return false
}
