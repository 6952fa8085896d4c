package profile

import (
	"encoding/json"
	"io/fs"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// schemaFile is the on-disk shape of an alternate JSON profile schema,
// keyed to FIT's message/field/enum model.
type schemaFile struct {
	Messages []schemaMessage              `json:"Messages"`
	Enums    map[string]map[uint32]string `json:"Enums"`
}

type schemaMessage struct {
	Num    uint16         `json:"Num"`
	Name   string         `json:"Name"`
	Fields []schemaField `json:"Fields"`
}

type schemaField struct {
	Num       uint8               `json:"Num"`
	Name      string              `json:"Name"`
	Scale     float64             `json:"Scale"`
	Offset    float64             `json:"Offset"`
	Enum      string              `json:"Enum,omitempty"`
	Subfields []schemaSubfieldDef `json:"Subfields,omitempty"`
}

type schemaSubfieldDef struct {
	Name       string              `json:"Name"`
	References []schemaSubfieldRef `json:"References"`
}

type schemaSubfieldRef struct {
	FieldName string `json:"FieldName"`
	Value     uint64 `json:"Value"`
}

var (
	loadCacheMu sync.RWMutex
	loadCache   = map[uint64]Profile{}
)

// Load reads a Profile from a JSON schema file, for deployments that
// want to override or extend the compiled-in table without a rebuild.
// Repeated calls for the same schema content are served from an
// in-memory cache keyed by the file's xxhash, so a long-running process
// reloading the same profile on every connection doesn't re-parse it
// every time.
func Load(filesystem fs.FS, path string) (Profile, error) {
	b, err := fs.ReadFile(filesystem, path)
	if err != nil {
		return Profile{}, err
	}

	key := xxhash.Sum64(b)
	loadCacheMu.RLock()
	if p, ok := loadCache[key]; ok {
		loadCacheMu.RUnlock()
		return p, nil
	}
	loadCacheMu.RUnlock()

	var raw schemaFile
	if err := json.Unmarshal(b, &raw); err != nil {
		return Profile{}, err
	}

	messages := make([]MesgDef, 0, len(raw.Messages))
	for _, m := range raw.Messages {
		fields := make([]FieldDef, 0, len(m.Fields))
		for _, f := range m.Fields {
			subfields := make([]SubfieldDef, 0, len(f.Subfields))
			for _, sf := range f.Subfields {
				refs := make([]SubfieldRef, 0, len(sf.References))
				for _, r := range sf.References {
					refs = append(refs, SubfieldRef{FieldName: r.FieldName, Value: r.Value})
				}
				subfields = append(subfields, SubfieldDef{Name: sf.Name, References: refs})
			}
			fields = append(fields, FieldDef{
				Num:       f.Num,
				Name:      f.Name,
				Scale:     f.Scale,
				Offset:    f.Offset,
				Enum:      f.Enum,
				Subfields: subfields,
			})
		}
		messages = append(messages, MesgDef{Num: m.Num, Name: m.Name, Fields: fields})
	}

	p := New(messages, raw.Enums)

	loadCacheMu.Lock()
	loadCache[key] = p
	loadCacheMu.Unlock()

	return p, nil
}
