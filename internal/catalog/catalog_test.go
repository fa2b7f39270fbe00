package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lsys/internal/lsystem"
)

// Каждая запись каталога обязана парситься и делать хотя бы три поколения.
func TestAllEntriesDerive(t *testing.T) {
	entries := All()
	require.NotEmpty(t, entries)

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		t.Run(e.Name, func(t *testing.T) {
			require.False(t, seen[e.Name], "duplicate name")
			seen[e.Name] = true
			require.NotEmpty(t, e.Description)
			require.Positive(t, e.Iterations)

			sys, err := lsystem.New(e.Config)
			require.NoError(t, err)
			for g := 0; g < 3; g++ {
				_, err := sys.NextGeneration()
				require.NoError(t, err)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("koch-snowflake")
	require.True(t, ok)
	require.Equal(t, 60.0, e.Angle)

	_, ok = Lookup("moebius")
	require.False(t, ok)
}

func TestKochSnowflakeGrowth(t *testing.T) {
	e, _ := Lookup("koch-snowflake")
	sys, err := lsystem.New(e.Config)
	require.NoError(t, err)

	// каждый F даёт 4 новых сегмента: 3 -> 12 -> 48
	for g, want := range []int{12, 48} {
		seq, err := sys.NextGeneration()
		require.NoError(t, err)
		fs := 0
		for _, m := range seq {
			if m.Symbol == "F" {
				fs++
			}
		}
		require.Equal(t, want, fs, "generation %d", g+1)
	}
}

func TestDragonCurveAlternation(t *testing.T) {
	e, _ := Lookup("dragon-curve")
	sys, err := lsystem.New(e.Config)
	require.NoError(t, err)

	seq, err := sys.NextGeneration()
	require.NoError(t, err)
	require.Equal(t, "Fl + Fr +", lsystem.FormatSequence(seq))

	seq, err = sys.NextGeneration()
	require.NoError(t, err)
	require.Equal(t, "Fl + Fr + + - Fl - Fr +", lsystem.FormatSequence(seq))
}

// Сигнальное дерево читает соседей сквозь прозрачные + - F.
func TestSignalTreeUsesIgnore(t *testing.T) {
	e, _ := Lookup("signal-tree")
	sys, err := lsystem.New(e.Config)
	require.NoError(t, err)

	seq, err := sys.NextGeneration()
	require.NoError(t, err)
	// 1<1>1 ? 0 в середине, края остаются (контекст за границей)
	require.Equal(t, "F 1 F 0 F 1", lsystem.FormatSequence(seq))
}

func TestAnabaenaKeepsGrowing(t *testing.T) {
	e, _ := Lookup("anabaena")
	sys, err := lsystem.New(e.Config)
	require.NoError(t, err)

	prevLen := len(sys.Current())
	for g := 0; g < 40; g++ {
		_, err := sys.NextGeneration()
		require.NoError(t, err)
	}
	require.Greater(t, len(sys.Current()), prevLen)
}
