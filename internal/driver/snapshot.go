package driver

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"lsys/internal/lsystem"
)

// snapshotVersion is bumped on every payload schema change; loading refuses
// other versions instead of guessing.
const snapshotVersion = 1

// Snapshot captures a derivation mid-flight so it can resume later.
type Snapshot struct {
	Name       string
	Generation int
	Sequence   []lsystem.Module
}

// snapshotPayload — плоская форма для msgpack: символы и параметры
// раздельными массивами одной длины.
type snapshotPayload struct {
	Version    int         `msgpack:"version"`
	Name       string      `msgpack:"name"`
	Generation int         `msgpack:"generation"`
	Symbols    []string    `msgpack:"symbols"`
	Params     [][]float64 `msgpack:"params"`
}

// SaveSnapshot serialises the snapshot to path, overwriting any previous one.
func SaveSnapshot(path string, snap Snapshot) error {
	payload := snapshotPayload{
		Version:    snapshotVersion,
		Name:       snap.Name,
		Generation: snap.Generation,
		Symbols:    make([]string, len(snap.Sequence)),
		Params:     make([][]float64, len(snap.Sequence)),
	}
	for i, m := range snap.Sequence {
		payload.Symbols[i] = m.Symbol
		payload.Params[i] = m.Params
	}
	data, err := msgpack.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a snapshot written by SaveSnapshot.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var payload snapshotPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	if payload.Version != snapshotVersion {
		return nil, fmt.Errorf("snapshot %s: unsupported version %d, want %d",
			path, payload.Version, snapshotVersion)
	}
	if len(payload.Symbols) != len(payload.Params) {
		return nil, fmt.Errorf("snapshot %s: %d symbols but %d parameter rows",
			path, len(payload.Symbols), len(payload.Params))
	}

	seq := make([]lsystem.Module, len(payload.Symbols))
	for i := range payload.Symbols {
		seq[i] = lsystem.Module{Symbol: payload.Symbols[i], Params: payload.Params[i]}
	}
	return &Snapshot{
		Name:       payload.Name,
		Generation: payload.Generation,
		Sequence:   seq,
	}, nil
}

// Resume applies a snapshot to a freshly parsed system.
func Resume(sys *lsystem.LSystem, snap *Snapshot) {
	sys.Restore(snap.Generation, snap.Sequence)
}
