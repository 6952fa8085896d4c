package fit

// BaseType is one of the 17 FIT base types, keyed by the low byte of the
// definition record's base-type byte. The high bit (0x80) flags
// "endian-sensitive" in the wire format, but width alone is sufficient
// to decode correctly.
type BaseType uint8

const (
	BaseTypeEnum    BaseType = 0x00
	BaseTypeSint8   BaseType = 0x01
	BaseTypeUint8   BaseType = 0x02
	BaseTypeSint16  BaseType = 0x83
	BaseTypeUint16  BaseType = 0x84
	BaseTypeSint32  BaseType = 0x85
	BaseTypeUint32  BaseType = 0x86
	BaseTypeString  BaseType = 0x07
	BaseTypeFloat32 BaseType = 0x88
	BaseTypeFloat64 BaseType = 0x89
	BaseTypeUint8z  BaseType = 0x0A
	BaseTypeUint16z BaseType = 0x8B
	BaseTypeUint32z BaseType = 0x8C
	BaseTypeByte    BaseType = 0x0D
	BaseTypeSint64  BaseType = 0x8E
	BaseTypeUint64  BaseType = 0x8F
	BaseTypeUint64z BaseType = 0x90
)

// Width returns the base type's element width in bytes, or 0 for an
// unknown code (caller still consumes the definition's declared size,
// it just can't interpret individual elements).
func (b BaseType) Width() int {
	switch b {
	case BaseTypeEnum, BaseTypeSint8, BaseTypeUint8, BaseTypeUint8z, BaseTypeByte:
		return 1
	case BaseTypeSint16, BaseTypeUint16, BaseTypeUint16z:
		return 2
	case BaseTypeSint32, BaseTypeUint32, BaseTypeUint32z, BaseTypeFloat32:
		return 4
	case BaseTypeSint64, BaseTypeUint64, BaseTypeUint64z, BaseTypeFloat64:
		return 8
	case BaseTypeString:
		return 1
	default:
		return 0
	}
}

// Known reports whether b is one of the 17 defined base types.
func (b BaseType) Known() bool {
	return b.Width() > 0
}

// Signed reports whether b is a signed integer base type.
func (b BaseType) Signed() bool {
	switch b {
	case BaseTypeSint8, BaseTypeSint16, BaseTypeSint32, BaseTypeSint64:
		return true
	default:
		return false
	}
}

func (b BaseType) String() string {
	switch b {
	case BaseTypeEnum:
		return "enum"
	case BaseTypeSint8:
		return "sint8"
	case BaseTypeUint8:
		return "uint8"
	case BaseTypeSint16:
		return "sint16"
	case BaseTypeUint16:
		return "uint16"
	case BaseTypeSint32:
		return "sint32"
	case BaseTypeUint32:
		return "uint32"
	case BaseTypeString:
		return "string"
	case BaseTypeFloat32:
		return "float32"
	case BaseTypeFloat64:
		return "float64"
	case BaseTypeUint8z:
		return "uint8z"
	case BaseTypeUint16z:
		return "uint16z"
	case BaseTypeUint32z:
		return "uint32z"
	case BaseTypeByte:
		return "byte"
	case BaseTypeSint64:
		return "sint64"
	case BaseTypeUint64:
		return "uint64"
	case BaseTypeUint64z:
		return "uint64z"
	default:
		return "unknown"
	}
}

// isInvalidElement reports whether raw, the unsigned bit pattern of one
// element of base type bt, equals that type's reserved "no value"
// sentinel.
func isInvalidElement(bt BaseType, raw uint64) bool {
	switch bt {
	case BaseTypeEnum, BaseTypeUint8, BaseTypeByte:
		return raw == 0xFF
	case BaseTypeSint8:
		return int8(raw) == 0x7F
	case BaseTypeUint16:
		return raw == 0xFFFF
	case BaseTypeSint16:
		return int16(raw) == 0x7FFF
	case BaseTypeUint32:
		return raw == 0xFFFFFFFF
	case BaseTypeSint32:
		return int32(raw) == 0x7FFFFFFF
	case BaseTypeUint64:
		return raw == 0xFFFFFFFFFFFFFFFF
	case BaseTypeSint64:
		return int64(raw) == 0x7FFFFFFFFFFFFFFF
	case BaseTypeUint8z:
		return raw == 0x00
	case BaseTypeUint16z:
		return raw == 0x0000
	case BaseTypeUint32z:
		return raw == 0x00000000
	case BaseTypeUint64z:
		return raw == 0x0000000000000000
	case BaseTypeFloat32:
		return raw == 0xFFFFFFFF
	case BaseTypeFloat64:
		return raw == 0xFFFFFFFFFFFFFFFF
	default:
		return false
	}
}
