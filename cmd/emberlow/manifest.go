package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"ember/internal/types"
)

// Manifest is the optional lower.toml the CLI reads: a default target triple
// plus named record definitions whose fields are type expressions.
//
//	[target]
//	triple = "x86_64-linux-gnu"
//
//	[records]
//	Node = ["next: ptr(Node)", "value: i32"]
type Manifest struct {
	Target struct {
		Triple string `toml:"triple"`
	} `toml:"target"`
	Records map[string][]string `toml:"records"`
}

func loadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return &m, nil
}

// registerRecords interns every manifest record. Records are registered
// before any field is parsed so fields can refer to any record, including the
// one being defined.
func (m *Manifest) registerRecords(in *types.Interner) (map[string]types.TypeID, error) {
	if m == nil || len(m.Records) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(m.Records))
	for name := range m.Records {
		names = append(names, name)
	}
	sort.Strings(names)

	records := make(map[string]types.TypeID, len(names))
	for _, name := range names {
		records[name] = in.RegisterRecord(name)
	}

	for _, name := range names {
		fields := make([]types.RecordField, 0, len(m.Records[name]))
		for _, spec := range m.Records[name] {
			fieldName, expr, err := splitField(spec)
			if err != nil {
				return nil, fmt.Errorf("record %s: %w", name, err)
			}
			id, err := parseTypeExpr(in, records, expr)
			if err != nil {
				return nil, fmt.Errorf("record %s, field %s: %w", name, fieldName, err)
			}
			fields = append(fields, types.RecordField{Name: fieldName, Type: id})
		}
		in.SetRecordFields(records[name], fields)
	}
	return records, nil
}

// splitField parses a "name: type-expr" field spec.
func splitField(spec string) (name, expr string, err error) {
	i := strings.IndexByte(spec, ':')
	if i < 0 {
		return "", "", fmt.Errorf("field spec %q is missing a %q separator", spec, ":")
	}
	name = strings.TrimSpace(spec[:i])
	expr = strings.TrimSpace(spec[i+1:])
	if name == "" || expr == "" {
		return "", "", fmt.Errorf("malformed field spec %q", spec)
	}
	return name, expr, nil
}
