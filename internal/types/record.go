package types

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// RecordField describes a single field inside a record type.
type RecordField struct {
	Name string
	Type TypeID
}

// RecordInfo stores metadata for a record (struct/class) type.
//
// Canonical is the TypeID owned by the record's declaring symbol. Mirror
// TypeIDs referring to the same RecordID can exist (e.g. from instantiated
// generics before merging); everything downstream of the front end must go
// through the canonical TypeID.
type RecordInfo struct {
	Name      string
	Fields    []RecordField
	Canonical TypeID
}

// RegisterRecord allocates a record type and returns its canonical TypeID.
// Fields are attached later via SetRecordFields, which is what allows a
// record to reference itself.
func (in *Interner) RegisterRecord(name string) TypeID {
	lenRecords, err := safecast.Conv[uint32](len(in.records))
	if err != nil {
		panic(fmt.Errorf("types: len(records) overflow: %w", err))
	}
	rec := RecordID(lenRecords)
	in.records = append(in.records, RecordInfo{Name: name})
	id := in.internRaw(Type{Kind: KindRecord, Record: rec})
	in.records[rec].Canonical = id
	return id
}

// SetRecordFields stores the resolved field descriptors for the record.
func (in *Interner) SetRecordFields(id TypeID, fields []RecordField) {
	info := in.recordInfo(id)
	if info == nil {
		return
	}
	info.Fields = slices.Clone(fields)
}

// RecordInfo returns metadata for the provided record TypeID.
func (in *Interner) RecordInfo(id TypeID) (*RecordInfo, bool) {
	info := in.recordInfo(id)
	if info == nil {
		return nil, false
	}
	return info, true
}

// MirrorRecord mints a distinct, non-canonical TypeID for an existing record.
func (in *Interner) MirrorRecord(id TypeID) TypeID {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindRecord {
		panic("types: MirrorRecord on non-record TypeID")
	}
	return in.internRaw(Type{Kind: KindRecord, Record: tt.Record})
}

func (in *Interner) recordInfo(id TypeID) *RecordInfo {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindRecord {
		return nil
	}
	if tt.Record == NoRecordID || int(tt.Record) >= len(in.records) {
		return nil
	}
	return &in.records[tt.Record]
}
