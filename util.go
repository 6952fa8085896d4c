package fit

// FindFieldValueByKind returns the first value of the first field
// matching kind across an ordered message sequence.
func FindFieldValueByKind(messages []DataMessage, kind FieldKind) (DataValue, bool) {
	for _, m := range messages {
		if f, ok := m.FieldByKind(kind); ok {
			return f.Value(), true
		}
	}
	return DataValue{}, false
}

// FindFieldValueAsString is FindFieldValueByKind narrowed to values that
// hold a string.
func FindFieldValueAsString(messages []DataMessage, kind FieldKind) (string, bool) {
	v, ok := FindFieldValueByKind(messages, kind)
	if !ok {
		return "", false
	}
	return v.AsString()
}
