package fit

// devFieldInfo is the resolved description of one developer field,
// assembled from a FieldDescription (global mesg 206) data message.
type devFieldInfo struct {
	DevDataIndex uint8
	FieldDefNum  uint8
	BaseType     BaseType
	Name         string
	Scale        float64
	Offset       float64
}

// devFieldKey identifies a developer field independent of any one
// stream's local message table: the (developer data index, field
// definition number) pair is unique within a FIT file.
type devFieldKey struct {
	DevDataIndex uint8
	FieldDefNum  uint8
}

// devFieldRegistry accumulates FieldDescription messages as they're
// encountered mid-stream and answers lookups for developer-field data
// records seen afterwards. Unlike the profile's static tables this
// state is per-file (held in parseState and rebuilt at every file
// header), since developer fields are defined by the file itself rather
// than by a shared schema.
type devFieldRegistry struct {
	fields map[devFieldKey]devFieldInfo
}

func newDevFieldRegistry() *devFieldRegistry {
	return &devFieldRegistry{fields: make(map[devFieldKey]devFieldInfo)}
}

// register installs (or replaces) the description for one developer
// field, extracted from a decoded FieldDescription message.
func (reg *devFieldRegistry) register(info devFieldInfo) {
	reg.fields[devFieldKey{info.DevDataIndex, info.FieldDefNum}] = info
}

// lookup returns the description for a developer field, if a
// FieldDescription for it has been seen so far in the stream.
func (reg *devFieldRegistry) lookup(devDataIndex, fieldDefNum uint8) (devFieldInfo, bool) {
	info, ok := reg.fields[devFieldKey{devDataIndex, fieldDefNum}]
	return info, ok
}

// fieldDescriptionFromMessage extracts a devFieldInfo from a decoded
// FieldDescription (206) DataMessage. Fields absent from the message
// (scale/offset/name) fall back to identity/empty.
func fieldDescriptionFromMessage(msg DataMessage) (devFieldInfo, bool) {
	devIdxField, ok := msg.FieldByName("DeveloperDataIndex")
	if !ok {
		return devFieldInfo{}, false
	}
	fieldNumField, ok := msg.FieldByName("FieldDefinitionNumber")
	if !ok {
		return devFieldInfo{}, false
	}
	baseTypeField, ok := msg.FieldByName("FitBaseTypeId")
	if !ok {
		return devFieldInfo{}, false
	}

	info := devFieldInfo{
		DevDataIndex: uint8(devIdxField.Value().Uint),
		FieldDefNum:  uint8(fieldNumField.Value().Uint),
		BaseType:     BaseType(baseTypeField.Value().Uint),
		Scale:        1,
	}

	if nameField, ok := msg.FieldByName("FieldName"); ok {
		if s, ok := nameField.Value().AsString(); ok {
			info.Name = s
		}
	}
	if scaleField, ok := msg.FieldByName("Scale"); ok {
		if v, ok := scaleField.Value().AsFloat64(); ok && v != 0 {
			info.Scale = v
		}
	}
	if offsetField, ok := msg.FieldByName("Offset"); ok {
		if v, ok := offsetField.Value().AsFloat64(); ok {
			info.Offset = v
		}
	}
	return info, true
}
