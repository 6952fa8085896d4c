package fit

import "encoding/binary"

// fieldDef is one element of a definition record: which field definition
// number occupies how many bytes, encoded as which base type.
type fieldDef struct {
	Num      uint8
	Size     uint8
	BaseType BaseType
}

// devFieldDef is one developer-field element of a definition record: it
// names a (developer data index, field definition number) pair rather
// than a base type directly; the actual type comes from the matching
// FieldDescription message.
type devFieldDef struct {
	Num   uint8
	Size  uint8
	DevID uint8
}

// definition is an installed local message definition: the architecture
// it was declared under, the global message it expands to, and its
// ordered field layout.
type definition struct {
	GlobalMesgNum uint16
	Order         binary.ByteOrder
	Fields        []fieldDef
	DevFields     []devFieldDef
}

// byteSize returns the total byte width of one data record matching this
// definition, developer fields included.
func (d definition) byteSize() int {
	n := 0
	for _, f := range d.Fields {
		n += int(f.Size)
	}
	for _, f := range d.DevFields {
		n += int(f.Size)
	}
	return n
}

// localMessageTable holds the 16 local-message slots a stream can have
// installed at any one time; a new definition record reusing a slot
// replaces whatever was installed there.
type localMessageTable [16]*definition

// decodeDefinition reads one definition record's body (the record header
// byte has already been consumed by the caller) and returns the
// definition to install at hdr.LocalMessageType.
func decodeDefinition(r *byteReader, hdr recordHeader) (definition, error) {
	if _, err := r.readU8(); err != nil { // reserved
		return definition{}, err
	}
	arch, err := r.readU8()
	if err != nil {
		return definition{}, err
	}
	order := binary.LittleEndian
	if arch != 0 {
		order = binary.BigEndian
	}
	r.setByteOrder(order)

	globalMesgNum, err := r.readU16()
	if err != nil {
		return definition{}, err
	}
	fieldCount, err := r.readU8()
	if err != nil {
		return definition{}, err
	}

	fields := make([]fieldDef, 0, fieldCount)
	for i := uint8(0); i < fieldCount; i++ {
		num, err := r.readU8()
		if err != nil {
			return definition{}, err
		}
		size, err := r.readU8()
		if err != nil {
			return definition{}, err
		}
		btByte, err := r.readU8()
		if err != nil {
			return definition{}, err
		}
		if size == 0 {
			return definition{}, FormatError("fit: zero-size field in definition record")
		}
		fields = append(fields, fieldDef{Num: num, Size: size, BaseType: BaseType(btByte)})
	}

	d := definition{GlobalMesgNum: globalMesgNum, Order: order, Fields: fields}

	if hdr.DeveloperData {
		devCount, err := r.readU8()
		if err != nil {
			return definition{}, err
		}
		devFields := make([]devFieldDef, 0, devCount)
		for i := uint8(0); i < devCount; i++ {
			num, err := r.readU8()
			if err != nil {
				return definition{}, err
			}
			size, err := r.readU8()
			if err != nil {
				return definition{}, err
			}
			devID, err := r.readU8()
			if err != nil {
				return definition{}, err
			}
			if size == 0 {
				return definition{}, FormatError("fit: zero-size developer field in definition record")
			}
			devFields = append(devFields, devFieldDef{Num: num, Size: size, DevID: devID})
		}
		d.DevFields = devFields
	}

	return d, nil
}
