package fit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDefinitionLittleEndian(t *testing.T) {
	// reserved, arch=0 (LE), global mesg=0 (FileId), field_count=1,
	// field (num=0, size=1, base_type=uint8).
	data := []byte{0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x02}
	r := newByteReader(data)
	def, err := decodeDefinition(r, recordHeader{Kind: recordKindDefinition})
	require.NoError(t, err)
	assert.Equal(t, uint16(0), def.GlobalMesgNum)
	require.Len(t, def.Fields, 1)
	assert.Equal(t, fieldDef{Num: 0, Size: 1, BaseType: BaseTypeUint8}, def.Fields[0])
	assert.Empty(t, def.DevFields)
}

func TestDecodeDefinitionBigEndianGlobalMesgNum(t *testing.T) {
	// arch=1 (BE); global mesg=20 (Record) encoded big-endian.
	data := []byte{0x00, 0x01, 0x00, 0x14, 0x01, 0x00, 0x04, byte(BaseTypeUint32)}
	r := newByteReader(data)
	def, err := decodeDefinition(r, recordHeader{Kind: recordKindDefinition})
	require.NoError(t, err)
	assert.Equal(t, uint16(20), def.GlobalMesgNum)
}

func TestDecodeDefinitionWithDeveloperFields(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x00, 0x00, // reserved, arch, global mesg num (0)
		0x01, 0x00, 0x01, 0x02, // field_count=1, field(0,1,uint8)
		0x01, 0x07, 0x02, 0x00, // dev_field_count=1, dev field (num=7,size=2,devIdx=0)
	}
	r := newByteReader(data)
	def, err := decodeDefinition(r, recordHeader{Kind: recordKindDefinition, DeveloperData: true})
	require.NoError(t, err)
	require.Len(t, def.DevFields, 1)
	assert.Equal(t, devFieldDef{Num: 7, Size: 2, DevID: 0}, def.DevFields[0])
}

func TestDecodeDefinitionZeroSizeFieldFails(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x02}
	r := newByteReader(data)
	_, err := decodeDefinition(r, recordHeader{Kind: recordKindDefinition})
	assert.Error(t, err)
}

func TestDefinitionByteSize(t *testing.T) {
	def := definition{Fields: []fieldDef{{Size: 1}, {Size: 4}}, DevFields: []devFieldDef{{Size: 2}}}
	assert.Equal(t, 7, def.byteSize())
}
