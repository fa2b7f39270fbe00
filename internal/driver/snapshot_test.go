package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"lsys/internal/catalog"
	"lsys/internal/lsystem"
)

func TestSnapshotRoundTrip(t *testing.T) {
	res, err := Derive(kochRequest(3))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "koch.lsnap")
	require.NoError(t, SaveSnapshot(path, Snapshot{
		Name:       res.Name,
		Generation: res.Generations,
		Sequence:   res.Sequence,
	}))

	snap, err := LoadSnapshot(path)
	require.NoError(t, err)
	require.Equal(t, "koch-snowflake", snap.Name)
	require.Equal(t, 3, snap.Generation)
	require.Equal(t, res.Sequence, snap.Sequence)
}

// Возобновлённая деривация совпадает с непрерывной той же длины.
func TestResumeContinuesDerivation(t *testing.T) {
	e, _ := catalog.Lookup("koch-snowflake")
	path := filepath.Join(t.TempDir(), "resume.lsnap")

	res, err := Derive(Request{Name: e.Name, Config: e.Config, Generations: 2})
	require.NoError(t, err)
	require.NoError(t, SaveSnapshot(path, Snapshot{
		Name:       res.Name,
		Generation: res.Generations,
		Sequence:   res.Sequence,
	}))

	snap, err := LoadSnapshot(path)
	require.NoError(t, err)
	sys, err := lsystem.New(e.Config)
	require.NoError(t, err)
	Resume(sys, snap)
	require.Equal(t, 2, sys.Generation())
	_, err = sys.NextGeneration()
	require.NoError(t, err)

	straight, err := Derive(Request{Name: e.Name, Config: e.Config, Generations: 3})
	require.NoError(t, err)
	require.Equal(t, straight.Sequence, sys.Current())
}

func TestLoadSnapshotRejectsBadPayloads(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadSnapshot(filepath.Join(dir, "missing.lsnap"))
	require.Error(t, err)

	garbled := filepath.Join(dir, "garbled.lsnap")
	require.NoError(t, os.WriteFile(garbled, []byte("not msgpack"), 0o644))
	_, err = LoadSnapshot(garbled)
	require.Error(t, err)

	future, err := msgpack.Marshal(snapshotPayload{Version: snapshotVersion + 1})
	require.NoError(t, err)
	futurePath := filepath.Join(dir, "future.lsnap")
	require.NoError(t, os.WriteFile(futurePath, future, 0o644))
	_, err = LoadSnapshot(futurePath)
	require.ErrorContains(t, err, "unsupported version")

	skewed, err := msgpack.Marshal(snapshotPayload{
		Version: snapshotVersion,
		Symbols: []string{"F"},
	})
	require.NoError(t, err)
	skewedPath := filepath.Join(dir, "skewed.lsnap")
	require.NoError(t, os.WriteFile(skewedPath, skewed, 0o644))
	_, err = LoadSnapshot(skewedPath)
	require.ErrorContains(t, err, "parameter rows")
}
