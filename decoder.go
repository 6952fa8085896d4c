package fit

import (
	"fmt"

	"github.com/aldas/go-fit-decoder/fitcrc"
	"github.com/aldas/go-fit-decoder/profile"
)

// DecoderConfig is a small set of opt-in behaviors layered on top of the
// always-on decode path.
type DecoderConfig struct {
	// ResolveEnums instructs the decoder to additionally populate
	// DataField.EnumName from the profile's enum tables. Off by default:
	// callers that want the raw integer form shouldn't have to opt out
	// of an enum lookup they never asked for.
	ResolveEnums bool
}

// Decoder decodes a stream of one or more chained FIT files. It holds no
// per-parse state itself; each call to Decode or DecodeLazy constructs
// its own local message table and developer registry, so nothing is
// shared across invocations or across files within one chained stream.
type Decoder struct {
	config  DecoderConfig
	profile profile.Profile
}

// NewDecoder returns a Decoder using the compiled-in profile table and
// default config.
func NewDecoder() *Decoder {
	return NewDecoderWithConfig(DecoderConfig{})
}

// NewDecoderWithConfig returns a Decoder using the compiled-in profile
// table and an explicit config.
func NewDecoderWithConfig(config DecoderConfig) *Decoder {
	return &Decoder{config: config, profile: profile.Default()}
}

// NewDecoderWithProfile returns a Decoder using an explicit profile
// table (e.g. loaded from JSON via profile.Load) instead of the
// compiled-in one.
func NewDecoderWithProfile(p profile.Profile, config DecoderConfig) *Decoder {
	return &Decoder{config: config, profile: p}
}

// parseState is the per-FIT-file state reset at the start of every
// header encountered in the stream: the local message table, the
// developer-data registry, and the rolling timestamp used to expand
// compressed headers.
type parseState struct {
	table         localMessageTable
	devRegistry   *devFieldRegistry
	lastTimestamp uint32
	haveTimestamp bool
}

func newParseState() *parseState {
	return &parseState{devRegistry: newDevFieldRegistry()}
}

// Decode parses every chained FIT file in data and returns the full
// ordered message sequence.
func (d *Decoder) Decode(data []byte) ([]DataMessage, error) {
	var out []DataMessage
	err := d.DecodeLazy(data, func(m DataMessage) error {
		out = append(out, m)
		return nil
	})
	return out, err
}

// DecodeLazy parses data, invoking fn for each DataMessage as it is
// assembled, in wire order. An error returned by fn aborts the parse
// immediately.
func (d *Decoder) DecodeLazy(data []byte, fn func(DataMessage) error) error {
	r := newByteReader(data)
	for r.remaining() > 0 {
		hdr, err := decodeHeader(r)
		if err != nil {
			return err
		}
		state := newParseState()
		end := r.position() + int(hdr.DataSize)
		for r.position() < end {
			b, err := r.readU8()
			if err != nil {
				return err
			}
			rh := decodeRecordHeader(b)
			msg, err := d.dispatchRecord(r, rh, state)
			if err != nil {
				return err
			}
			if msg == nil {
				continue // a Definition record installs a slot, nothing to emit
			}
			if err := fn(*msg); err != nil {
				return err
			}
		}
		if _, err := r.readBytes(2); err != nil { // trailing CRC, unchecked (Non-goal)
			return err
		}
	}
	return nil
}

// DecodeHeader decodes and returns only the first file header, without
// touching the record stream that follows. Useful for quickly
// inspecting a file's protocol/profile version before committing to a
// full decode.
func (d *Decoder) DecodeHeader(data []byte) (Header, error) {
	return decodeHeader(newByteReader(data))
}

// DecodeHeaderAndFileID decodes the file header plus the first
// DataMessage, which by FIT convention is always the FileId message
// (global message number 0). Returns the zero DataMessage and false if
// the stream's first record is not a FileId.
func (d *Decoder) DecodeHeaderAndFileID(data []byte) (Header, DataMessage, bool, error) {
	r := newByteReader(data)
	hdr, err := decodeHeader(r)
	if err != nil {
		return Header{}, DataMessage{}, false, err
	}
	state := newParseState()
	end := r.position() + int(hdr.DataSize)
	for r.position() < end {
		b, err := r.readU8()
		if err != nil {
			return Header{}, DataMessage{}, false, err
		}
		rh := decodeRecordHeader(b)
		msg, err := d.dispatchRecord(r, rh, state)
		if err != nil {
			return Header{}, DataMessage{}, false, err
		}
		if msg == nil {
			continue
		}
		if msg.Kind.Num != profile.MesgNumFileId {
			return hdr, DataMessage{}, false, nil
		}
		return hdr, *msg, true, nil
	}
	return hdr, DataMessage{}, false, nil
}

// dispatchRecord installs a definition, or decodes one
// data/compressed-timestamp record and returns it. Returns a nil
// message for definition records.
func (d *Decoder) dispatchRecord(r *byteReader, rh recordHeader, state *parseState) (*DataMessage, error) {
	switch rh.Kind {
	case recordKindDefinition:
		def, err := decodeDefinition(r, rh)
		if err != nil {
			return nil, err
		}
		state.table[rh.LocalMessageType] = &def
		return nil, nil
	case recordKindData, recordKindCompressedTimestampData:
		def := state.table[rh.LocalMessageType]
		if def == nil {
			return nil, &UndefinedLocalMessageError{LocalType: rh.LocalMessageType}
		}
		msg, err := d.decodeDataRecord(r, *def, rh, state)
		if err != nil {
			return nil, err
		}
		return &msg, nil
	default:
		return nil, FormatError("fit: unreachable record header kind")
	}
}

// decodeDataRecord decodes one data record's fields, resolves subfields,
// and updates the developer-field registry when the record is itself a
// FieldDescription message.
func (d *Decoder) decodeDataRecord(r *byteReader, def definition, rh recordHeader, state *parseState) (DataMessage, error) {
	mesgDef, knownMesg := d.profile.Message(def.GlobalMesgNum)
	kind := MessageKind{Num: def.GlobalMesgNum}
	if knownMesg {
		kind.Name = mesgDef.Name
	}

	r.setByteOrder(def.Order)

	var fields []DataField

	if rh.Kind == recordKindCompressedTimestampData {
		if ts, ok := expandCompressedTimestamp(state, rh.TimeOffset); ok {
			fields = append(fields, DataField{
				Kind:   FieldKind{Num: profile.FieldNumTimestamp, Name: "Timestamp"},
				Values: []DataValue{uintValue(uint64(ts))},
			})
		}
	}

	for _, fd := range def.Fields {
		fieldDef, known := profile.FieldDef{}, false
		if knownMesg {
			fieldDef, known = mesgDef.FieldByNum(fd.Num)
		}

		raw, err := decodeFieldValues(r, fd.BaseType, int(fd.Size))
		if err != nil {
			return DataMessage{}, err
		}

		scale, offset, name, enumName := 1.0, 0.0, "", ""
		if known {
			scale, offset, name, enumName = fieldDef.Scale, fieldDef.Offset, fieldDef.Name, fieldDef.Enum
		}

		finished := make([]DataValue, len(raw))
		for i, v := range raw {
			finished[i] = finishValue(v, scale, offset)
		}

		fk := FieldKind{Num: fd.Num, Name: name}
		if known && len(fieldDef.Subfields) > 0 {
			fk = resolveFieldKind(fieldDef, fields)
		}

		df := DataField{Kind: fk, Values: finished}
		if d.config.ResolveEnums && enumName != "" {
			if v := df.Value(); v.Kind == ValueUint {
				if variant, ok := d.profile.EnumVariant(enumName, uint32(v.Uint)); ok {
					df.EnumName = variant
				}
			}
		}
		fields = append(fields, df)

		if fk.Num == profile.FieldNumTimestamp {
			if v := df.Value(); v.Kind == ValueUint {
				state.lastTimestamp = uint32(v.Uint)
				state.haveTimestamp = true
			}
		}
	}

	for _, fd := range def.DevFields {
		df, err := d.decodeDevField(r, fd, state)
		if err != nil {
			return DataMessage{}, err
		}
		fields = append(fields, df)
	}

	msg := DataMessage{Kind: kind, Fields: fields}

	if def.GlobalMesgNum == profile.MesgNumFieldDescription {
		if info, ok := fieldDescriptionFromMessage(msg); ok {
			state.devRegistry.register(info)
		}
	}

	return msg, nil
}

// decodeDevField decodes one developer-data field using whatever the
// registry currently knows about it. A developer field is resolved
// using the registry state as it stood when the field was reached, not
// any FieldDescription that happens to arrive later in the same file.
func (d *Decoder) decodeDevField(r *byteReader, fd devFieldDef, state *parseState) (DataField, error) {
	info, ok := state.devRegistry.lookup(fd.DevID, fd.Num)
	if !ok {
		raw, err := r.readBytes(int(fd.Size))
		if err != nil {
			return DataField{}, err
		}
		return DataField{
			Kind:   FieldKind{Num: fd.Num, Name: "UnknownDeveloper"},
			Values: []DataValue{bytesValue(append([]byte(nil), raw...))},
		}, nil
	}

	raw, err := decodeFieldValues(r, info.BaseType, int(fd.Size))
	if err != nil {
		return DataField{}, err
	}
	finished := make([]DataValue, len(raw))
	for i, v := range raw {
		finished[i] = finishValue(v, info.Scale, info.Offset)
	}
	name := info.Name
	if name == "" {
		name = fmt.Sprintf("developer_field_%d", fd.Num)
	}
	return DataField{Kind: FieldKind{Num: fd.Num, Name: name}, Values: finished}, nil
}

// expandCompressedTimestamp replaces the last full timestamp's low 5
// bits with offset, rolling over into the high bits if offset is
// smaller than the timestamp's own low 5 bits.
func expandCompressedTimestamp(state *parseState, offset uint8) (uint32, bool) {
	if !state.haveTimestamp {
		return 0, false
	}
	base := state.lastTimestamp
	lowBits := uint8(base & 0x1F)
	high := base &^ 0x1F
	if offset < lowBits {
		high += 0x20
	}
	ts := high | uint32(offset)
	state.lastTimestamp = ts
	return ts, true
}

// CheckIntegrity verifies data's trailing CRC-16 against the FIT CRC
// algorithm (fitcrc). The main decode path never calls this; callers
// that want CRC validation opt in explicitly.
func CheckIntegrity(data []byte) error {
	if len(data) < 2 {
		return ErrUnexpectedEOF
	}
	body, trailer := data[:len(data)-2], data[len(data)-2:]
	want := uint16(trailer[0]) | uint16(trailer[1])<<8
	got := fitcrc.Checksum(body)
	if got != want {
		return IntegrityError(fmt.Sprintf("fit: crc mismatch: file says %#04x, computed %#04x", want, got))
	}
	return nil
}
