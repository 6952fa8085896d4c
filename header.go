package fit

import "encoding/binary"

// fitMarker is the literal ".FIT" ASCII marker at offset 8 of every file
// header.
var fitMarker = [4]byte{'.', 'F', 'I', 'T'}

// Header is a decoded FIT file header.
type Header struct {
	HeaderSize     uint8
	ProtocolVer    uint8
	ProfileVer     uint16
	DataSize       uint32
	CRC            uint16
	CRCPresent     bool
}

// decodeHeader parses the 12 or 14-byte file header starting at r's
// current position. An absent ".FIT" marker is fatal.
func decodeHeader(r *byteReader) (Header, error) {
	sizeByte, err := r.readU8()
	if err != nil {
		return Header{}, err
	}
	if sizeByte != 12 && sizeByte != 14 {
		return Header{}, FormatError("fit: invalid header size")
	}

	protoVer, err := r.readU8()
	if err != nil {
		return Header{}, err
	}

	r.setByteOrder(binary.LittleEndian)
	profileVer, err := r.readU16()
	if err != nil {
		return Header{}, err
	}
	dataSize, err := r.readU32()
	if err != nil {
		return Header{}, err
	}
	marker, err := r.readBytes(4)
	if err != nil {
		return Header{}, err
	}
	if [4]byte{marker[0], marker[1], marker[2], marker[3]} != fitMarker {
		return Header{}, FormatError("fit: missing .FIT marker")
	}

	h := Header{
		HeaderSize:  sizeByte,
		ProtocolVer: protoVer,
		ProfileVer:  profileVer,
		DataSize:    dataSize,
	}

	if sizeByte == 14 {
		crc, err := r.readU16()
		if err != nil {
			return Header{}, err
		}
		h.CRC = crc
		h.CRCPresent = true
	}
	return h, nil
}
