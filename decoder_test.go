package fit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- small binary builders, local to this test file ---

func leBytes16(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }
func leBytes32(v uint32) []byte { return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)} }
func beBytes16(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }

func testFileHeader(dataSize uint32) []byte {
	buf := []byte{0x0C, 0x10, 0x00, 0x00}
	buf = append(buf, leBytes32(dataSize)...)
	buf = append(buf, '.', 'F', 'I', 'T')
	return buf
}

type testField struct {
	Num      uint8
	Size     uint8
	BaseType BaseType
}

func buildDefinitionRecord(local uint8, devFlag bool, bigEndian bool, globalMesgNum uint16, fields, devFields []testField) []byte {
	hdrByte := byte(mesgHeaderBitMask) | local
	if devFlag {
		hdrByte |= developerDataMask
	}
	arch := byte(0)
	globalBytes := leBytes16(globalMesgNum)
	if bigEndian {
		arch = 1
		globalBytes = beBytes16(globalMesgNum)
	}
	buf := []byte{hdrByte, 0x00, arch}
	buf = append(buf, globalBytes...)
	buf = append(buf, byte(len(fields)))
	for _, f := range fields {
		buf = append(buf, f.Num, f.Size, byte(f.BaseType))
	}
	if devFlag {
		buf = append(buf, byte(len(devFields)))
		for _, f := range devFields {
			buf = append(buf, f.Num, f.Size, byte(f.BaseType)) // BaseType field reused to carry dev index
		}
	}
	return buf
}

func buildDataRecord(local uint8, payload []byte) []byte {
	return append([]byte{local}, payload...)
}

func buildCompressedRecord(local uint8, offset uint8, payload []byte) []byte {
	b := byte(compressedHeaderMask) | (local << 5) | (offset & compressedTimeMask)
	return append([]byte{b}, payload...)
}

func assembleFile(records ...[]byte) []byte {
	var body []byte
	for _, r := range records {
		body = append(body, r...)
	}
	out := testFileHeader(uint32(len(body)))
	out = append(out, body...)
	out = append(out, 0x00, 0x00) // unchecked trailing CRC
	return out
}

// --- minimal file ---

func TestDecodeMinimalFile(t *testing.T) {
	def := buildDefinitionRecord(0, false, false, 0, []testField{{Num: 0, Size: 1, BaseType: BaseTypeUint8}}, nil)
	data := buildDataRecord(0, []byte{4})
	file := assembleFile(def, data)

	messages, err := NewDecoder().Decode(file)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	assert.Equal(t, DataMessage{
		Kind: MessageKind{Num: 0, Name: "FileId"},
		Fields: []DataField{
			{Kind: FieldKind{Num: 0, Name: "Type"}, Values: []DataValue{uintValue(4)}},
		},
	}, messages[0])
}

// --- endian flip ---

func TestDecodeEndianFlip(t *testing.T) {
	defLE := buildDefinitionRecord(0, false, false, 999, []testField{{Num: 0, Size: 4, BaseType: BaseTypeUint32}}, nil)
	dataLE := buildDataRecord(0, leBytes32(0x01020304))

	defBE := buildDefinitionRecord(1, false, true, 999, []testField{{Num: 0, Size: 4, BaseType: BaseTypeUint32}}, nil)
	dataBE := buildDataRecord(1, []byte{0x01, 0x02, 0x03, 0x04})

	file := assembleFile(defLE, dataLE, defBE, dataBE)
	messages, err := NewDecoder().Decode(file)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, uint64(16909060), messages[0].Fields[0].Value().Uint)
	assert.Equal(t, uint64(16909060), messages[1].Fields[0].Value().Uint)
}

// --- invalid sentinel ---

func TestDecodeInvalidSentinel(t *testing.T) {
	def := buildDefinitionRecord(0, false, false, 20, []testField{{Num: 7, Size: 2, BaseType: BaseTypeUint16}}, nil)
	data := buildDataRecord(0, []byte{0xFF, 0xFF})
	file := assembleFile(def, data)

	messages, err := NewDecoder().Decode(file)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Len(t, messages[0].Fields, 1)
	assert.True(t, messages[0].Fields[0].Value().IsInvalid())
}

// --- compressed timestamp expansion ---

func TestDecodeCompressedTimestampExpansion(t *testing.T) {
	state := &parseState{lastTimestamp: 0x00000040, haveTimestamp: true}
	ts, ok := expandCompressedTimestamp(state, 0x05)
	require.True(t, ok)
	assert.Equal(t, uint32(0x00000045), ts)
}

func TestDecodeCompressedTimestampRollover(t *testing.T) {
	state := &parseState{lastTimestamp: 0x1F, haveTimestamp: true}
	ts, ok := expandCompressedTimestamp(state, 0x00)
	require.True(t, ok)
	assert.Equal(t, uint32(0x20), ts)
}

func TestDecodeCompressedTimestampEndToEnd(t *testing.T) {
	// local 0 carries an explicit Timestamp field, used once to seed
	// the parser's rolling "last timestamp" state.
	defWithTimestamp := buildDefinitionRecord(0, false, false, 20, []testField{
		{Num: FieldNumTimestampForTest, Size: 4, BaseType: BaseTypeUint32},
	}, nil)
	seed := buildDataRecord(0, leBytes32(0x40))

	// local 1 has no timestamp field at all: the compressed header is the
	// only source of its Timestamp.
	defNoTimestamp := buildDefinitionRecord(1, false, false, 20, []testField{
		{Num: 3, Size: 1, BaseType: BaseTypeUint8},
	}, nil)
	compressed := buildCompressedRecord(1, 0x05, []byte{99})

	file := assembleFile(defWithTimestamp, seed, defNoTimestamp, compressed)

	messages, err := NewDecoder().Decode(file)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	ts, ok := messages[1].FieldByName("Timestamp")
	require.True(t, ok)
	assert.Equal(t, uint64(0x45), ts.Value().Uint)
}

const FieldNumTimestampForTest = 253

// --- developer data ---

func TestDecodeDeveloperData(t *testing.T) {
	devIDDef := buildDefinitionRecord(0, false, false, 207, []testField{{Num: 4, Size: 1, BaseType: BaseTypeUint8}}, nil)
	devIDData := buildDataRecord(0, []byte{0})

	fieldName := append([]byte("power_est"), 0) // NUL-terminated, 10 bytes
	fieldDescDef := buildDefinitionRecord(1, false, false, 206, []testField{
		{Num: 0, Size: 1, BaseType: BaseTypeUint8},
		{Num: 1, Size: 1, BaseType: BaseTypeUint8},
		{Num: 2, Size: 1, BaseType: BaseTypeUint8},
		{Num: 3, Size: uint8(len(fieldName)), BaseType: BaseTypeString},
		{Num: 6, Size: 1, BaseType: BaseTypeUint8},
		{Num: 7, Size: 1, BaseType: BaseTypeSint8},
	}, nil)
	fieldDescPayload := append([]byte{0, 7, byte(BaseTypeUint16)}, fieldName...)
	fieldDescPayload = append(fieldDescPayload, 1, 0)
	fieldDescData := buildDataRecord(1, fieldDescPayload)

	devFieldDefRec := buildDefinitionRecord(2, true, false, 20, nil, []testField{{Num: 7, Size: 2, BaseType: 0}})
	devFieldData := buildDataRecord(2, []byte{0x2C, 0x01})

	file := assembleFile(devIDDef, devIDData, fieldDescDef, fieldDescData, devFieldDefRec, devFieldData)

	messages, err := NewDecoder().Decode(file)
	require.NoError(t, err)
	require.Len(t, messages, 3)

	assert.Equal(t, DataMessage{
		Kind: MessageKind{Num: 20, Name: "Record"},
		Fields: []DataField{
			{Kind: FieldKind{Num: 7, Name: "power_est"}, Values: []DataValue{uintValue(300)}},
		},
	}, messages[2])
}

// --- subfield resolution ---

func TestDecodeSubfieldResolution(t *testing.T) {
	def := buildDefinitionRecord(0, false, false, 21, []testField{
		{Num: 0, Size: 1, BaseType: BaseTypeUint8},
		{Num: 3, Size: 4, BaseType: BaseTypeUint32},
	}, nil)
	payload := append([]byte{74}, leBytes32(0x12345678)...)
	data := buildDataRecord(0, payload)
	file := assembleFile(def, data)

	messages, err := NewDecoder().Decode(file)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Len(t, messages[0].Fields, 2)
	assert.Equal(t, "RearGearChangeData", messages[0].Fields[1].Kind.Name)
	assert.Equal(t, uint64(0x12345678), messages[0].Fields[1].Value().Uint)
}

// --- boundary / invariant coverage ---

func TestDecodeDefinitionRedefiningSlotReplaces(t *testing.T) {
	def1 := buildDefinitionRecord(0, false, false, 0, []testField{{Num: 0, Size: 1, BaseType: BaseTypeUint8}}, nil)
	def2 := buildDefinitionRecord(0, false, false, 20, []testField{{Num: 7, Size: 2, BaseType: BaseTypeUint16}}, nil)
	data := buildDataRecord(0, leBytes16(42))
	file := assembleFile(def1, def2, data)

	messages, err := NewDecoder().Decode(file)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Record", messages[0].Kind.Name)
}

func TestDecodeUndefinedLocalMessage(t *testing.T) {
	data := buildDataRecord(5, []byte{1})
	file := assembleFile(data)
	_, err := NewDecoder().Decode(file)
	require.Error(t, err)
	var target *UndefinedLocalMessageError
	assert.ErrorAs(t, err, &target)
}

func TestDecodeIsIdempotent(t *testing.T) {
	def := buildDefinitionRecord(0, false, false, 0, []testField{{Num: 0, Size: 1, BaseType: BaseTypeUint8}}, nil)
	data := buildDataRecord(0, []byte{4})
	file := assembleFile(def, data)

	first, err := NewDecoder().Decode(file)
	require.NoError(t, err)
	second, err := NewDecoder().Decode(file)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecodeResolveEnumsOptIn(t *testing.T) {
	def := buildDefinitionRecord(0, false, false, 0, []testField{{Num: 0, Size: 1, BaseType: BaseTypeUint8}}, nil)
	data := buildDataRecord(0, []byte{4})
	file := assembleFile(def, data)

	plain, err := NewDecoder().Decode(file)
	require.NoError(t, err)
	assert.Empty(t, plain[0].Fields[0].EnumName)

	withEnums, err := NewDecoderWithConfig(DecoderConfig{ResolveEnums: true}).Decode(file)
	require.NoError(t, err)
	assert.Equal(t, "activity", withEnums[0].Fields[0].EnumName)
}

func TestCheckIntegrityDetectsMismatch(t *testing.T) {
	def := buildDefinitionRecord(0, false, false, 0, []testField{{Num: 0, Size: 1, BaseType: BaseTypeUint8}}, nil)
	data := buildDataRecord(0, []byte{4})
	file := assembleFile(def, data)

	err := CheckIntegrity(file)
	assert.Error(t, err)
}
