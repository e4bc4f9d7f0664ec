package main

import (
	"bytes"
	"testing"

	"ember/internal/lower"
	"ember/internal/target"
	"ember/internal/types"
)

func TestManifest_RegisterRecords(t *testing.T) {
	m := &Manifest{
		Records: map[string][]string{
			"Node": {"next: ptr(Node)", "value: i32"},
			"Pair": {"a: Node", "b: dyn(u8)"},
		},
	}

	in := types.NewInterner()
	records, err := m.registerRecords(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("registered %d records, want 2", len(records))
	}

	info, ok := in.RecordInfo(records["Node"])
	if !ok {
		t.Fatal("Node has no record metadata")
	}
	if len(info.Fields) != 2 || info.Fields[0].Name != "next" || info.Fields[1].Name != "value" {
		t.Fatalf("Node fields = %+v", info.Fields)
	}
	if info.Fields[0].Type != in.Pointer(records["Node"]) {
		t.Error("Node.next is not a self-pointer")
	}

	// The registered graph must lower cleanly, including the self-reference.
	l := lower.New(target.X86_64LinuxGNU(), in)
	if lw := l.Slot(records["Node"], true); lw.Kind != lower.KindAggregate {
		t.Errorf("Node lowered to %s, want aggregate", lw.Kind)
	}
	if lw := l.Slot(records["Pair"], true); lw.Kind != lower.KindAggregate {
		t.Errorf("Pair lowered to %s, want aggregate", lw.Kind)
	}
}

func TestManifest_FieldErrors(t *testing.T) {
	cases := map[string][]string{
		"missing separator": {"next ptr(Node)"},
		"empty name":        {": i32"},
		"unknown type":      {"next: Missing"},
	}
	for name, fields := range cases {
		m := &Manifest{Records: map[string][]string{"Node": fields}}
		if _, err := m.registerRecords(types.NewInterner()); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	snap := &Snapshot{
		Schema: snapshotSchemaVersion,
		Triple: "x86_64-linux-gnu",
		Entries: []SnapshotEntry{
			{Expr: "ptr(i32)", Kind: "pointer", LLVM: "i32*"},
			{Expr: "dyn(u8)", Kind: "dynamic-array", LLVM: "{ i64, i8* }"},
		},
	}

	var buf bytes.Buffer
	if err := writeSnapshot(&buf, snap); err != nil {
		t.Fatal(err)
	}
	got, err := readSnapshot(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.Triple != snap.Triple || len(got.Entries) != len(snap.Entries) {
		t.Fatalf("round trip produced %+v", got)
	}
	if got.Entries[0] != snap.Entries[0] || got.Entries[1] != snap.Entries[1] {
		t.Errorf("entries changed in round trip: %+v", got.Entries)
	}
}

func TestSnapshot_RejectsUnknownSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSnapshot(&buf, &Snapshot{Schema: 99}); err != nil {
		t.Fatal(err)
	}
	if _, err := readSnapshot(&buf); err == nil {
		t.Fatal("expected error for unknown schema version")
	}
}
