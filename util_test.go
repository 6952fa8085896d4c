package fit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFieldValueByKind(t *testing.T) {
	messages := []DataMessage{
		{Kind: MessageKind{Num: 0, Name: "FileId"}, Fields: []DataField{
			{Kind: FieldKind{Num: 0, Name: "Type"}, Values: []DataValue{uintValue(4)}},
		}},
		{Kind: MessageKind{Num: 20, Name: "Record"}, Fields: []DataField{
			{Kind: FieldKind{Num: 3, Name: "HeartRate"}, Values: []DataValue{uintValue(140)}},
		}},
	}

	v, ok := FindFieldValueByKind(messages, FieldKind{Num: 3, Name: "HeartRate"})
	require.True(t, ok)
	assert.Equal(t, uint64(140), v.Uint)

	_, ok = FindFieldValueByKind(messages, FieldKind{Num: 99, Name: "Nope"})
	assert.False(t, ok)
}

func TestFindFieldValueAsString(t *testing.T) {
	messages := []DataMessage{
		{Kind: MessageKind{Num: 0, Name: "FileId"}, Fields: []DataField{
			{Kind: FieldKind{Num: 7, Name: "ProductName"}, Values: []DataValue{stringValue("Edge 1040")}},
		}},
	}
	s, ok := FindFieldValueAsString(messages, FieldKind{Num: 7, Name: "ProductName"})
	require.True(t, ok)
	assert.Equal(t, "Edge 1040", s)
}
