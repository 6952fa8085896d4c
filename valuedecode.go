package fit

import "math"

// decodeFieldValues splits size bytes into base_type_width-sized
// elements, decodes each, and collapses to a single Invalid when every
// element hit the type's invalid sentinel.
func decodeFieldValues(r *byteReader, bt BaseType, size int) ([]DataValue, error) {
	if bt == BaseTypeString {
		s, ok, err := r.readString(size)
		if err != nil {
			return nil, err
		}
		if !ok {
			return []DataValue{invalidValue()}, nil
		}
		return []DataValue{stringValue(s)}, nil
	}

	width := bt.Width()
	if width == 0 || size%width != 0 {
		// Unknown base type, or size not a whole number of elements:
		// consume the declared size as an opaque blob.
		if _, err := r.readBytes(size); err != nil {
			return nil, err
		}
		return []DataValue{invalidValue()}, nil
	}

	n := size / width
	values := make([]DataValue, n)
	allInvalid := true
	for i := 0; i < n; i++ {
		v, raw, err := decodeElement(r, bt)
		if err != nil {
			return nil, err
		}
		if isInvalidElement(bt, raw) {
			v = invalidValue()
		} else {
			allInvalid = false
		}
		values[i] = v
	}
	if allInvalid {
		return []DataValue{invalidValue()}, nil
	}
	return values, nil
}

// decodeElement reads one base-type-width element at the reader's
// current position, returning both its typed DataValue and its raw bit
// pattern (for the invalid-sentinel comparison, which operates on the
// unsigned bit pattern regardless of signedness).
func decodeElement(r *byteReader, bt BaseType) (DataValue, uint64, error) {
	switch bt {
	case BaseTypeEnum, BaseTypeUint8, BaseTypeByte, BaseTypeUint8z:
		v, err := r.readU8()
		if err != nil {
			return DataValue{}, 0, err
		}
		return uintValue(uint64(v)), uint64(v), nil
	case BaseTypeSint8:
		v, err := r.readI8()
		if err != nil {
			return DataValue{}, 0, err
		}
		return intValue(int64(v)), uint64(uint8(v)), nil
	case BaseTypeUint16, BaseTypeUint16z:
		v, err := r.readU16()
		if err != nil {
			return DataValue{}, 0, err
		}
		return uintValue(uint64(v)), uint64(v), nil
	case BaseTypeSint16:
		v, err := r.readI16()
		if err != nil {
			return DataValue{}, 0, err
		}
		return intValue(int64(v)), uint64(uint16(v)), nil
	case BaseTypeUint32, BaseTypeUint32z:
		v, err := r.readU32()
		if err != nil {
			return DataValue{}, 0, err
		}
		return uintValue(uint64(v)), uint64(v), nil
	case BaseTypeSint32:
		v, err := r.readI32()
		if err != nil {
			return DataValue{}, 0, err
		}
		return intValue(int64(v)), uint64(uint32(v)), nil
	case BaseTypeUint64, BaseTypeUint64z:
		v, err := r.readU64()
		if err != nil {
			return DataValue{}, 0, err
		}
		return uintValue(v), v, nil
	case BaseTypeSint64:
		v, err := r.readI64()
		if err != nil {
			return DataValue{}, 0, err
		}
		return intValue(v), uint64(v), nil
	case BaseTypeFloat32:
		v, err := r.readF32()
		if err != nil {
			return DataValue{}, 0, err
		}
		return floatValue(float64(v)), uint64(math.Float32bits(v)), nil
	case BaseTypeFloat64:
		v, err := r.readF64()
		if err != nil {
			return DataValue{}, 0, err
		}
		return floatValue(v), math.Float64bits(v), nil
	default:
		v, err := r.readU8()
		if err != nil {
			return DataValue{}, 0, err
		}
		return uintValue(uint64(v)), uint64(v), nil
	}
}
