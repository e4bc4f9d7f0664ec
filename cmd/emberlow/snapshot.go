package main

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when the snapshot format changes.
const snapshotSchemaVersion uint16 = 1

// Snapshot is the machine-readable dump of a lowering run, consumed by
// tooling that diffs type layouts across targets.
type Snapshot struct {
	Schema  uint16
	Triple  string
	Entries []SnapshotEntry
}

// SnapshotEntry records one lowered type.
type SnapshotEntry struct {
	Expr string
	Kind string
	LLVM string
}

func writeSnapshot(w io.Writer, snap *Snapshot) error {
	if err := msgpack.NewEncoder(w).Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

func readSnapshot(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.Schema != snapshotSchemaVersion {
		return nil, fmt.Errorf("snapshot schema %d is not supported (want %d)", snap.Schema, snapshotSchemaVersion)
	}
	return &snap, nil
}
