// Package catalog ships a set of well-known L-systems, from the classic
// space-filling curves up to the Anabaena catenula development model. Each
// entry is a ready-to-run configuration plus the turtle hints a renderer
// would need.
package catalog

import (
	"lsys/internal/lsystem"
)

// Entry is one built-in system.
type Entry struct {
	Name        string
	Description string
	Config      lsystem.Config
	// Iterations is the generation count the system is usually shown at.
	Iterations int
	// Angle and Heading are turtle hints in degrees; the engine ignores
	// them.
	Angle   float64
	Heading float64
}

var entries = []Entry{
	{
		Name:        "koch-snowflake",
		Description: "Koch's snowflake, a DOL-system",
		Config: lsystem.Config{
			Axiom: "F + + F + + F",
			Rules: []string{"F ? F - F + + F - F"},
		},
		Iterations: 5,
		Angle:      60,
	},
	{
		Name:        "dragon-curve",
		Description: "the Heighway dragon curve",
		Config: lsystem.Config{
			Axiom: "Fl",
			Rules: []string{
				"Fl ? Fl + Fr +",
				"Fr ? - Fl - Fr",
			},
		},
		Iterations: 13,
		Angle:      90,
	},
	{
		Name:        "islands-and-lakes",
		Description: "islands and lakes, a two-letter DOL-system",
		Config: lsystem.Config{
			Axiom: "F + F + F + F",
			Rules: []string{
				"F ? F + f - F F + F + F F + F f + F F - f + F F - F - F F - F f - F F F",
				"f ? f f f f f f",
			},
		},
		Iterations: 3,
		Angle:      90,
	},
	{
		Name:        "plant",
		Description: "a bracketed plant-like structure",
		Config: lsystem.Config{
			Axiom: "F",
			Rules: []string{"F ? F F - [ - F + F + F ] + [ + F - F - F ]"},
		},
		Iterations: 4,
		Angle:      22.5,
		Heading:    90,
	},
	{
		Name:        "triangle-curve",
		Description: "a parametric triangle filling curve",
		Config: lsystem.Config{
			Axiom: "F(1,0)",
			Rules: []string{
				"F(x,t) : t == 0 ? F(x*0.3,2) + F(x*0.458,1) - - F(x*0.458,1) + F(x*0.7,0)",
				"F(x,t) : t > 0 ? F(x,t-1)",
			},
		},
		Iterations: 10,
		Angle:      86,
	},
	{
		Name:        "splitting-tree",
		Description: "a parametric splitting tree",
		Config: lsystem.Config{
			Axiom: "A(1)",
			Rules: []string{"A(s) ? F(s) [ + A(s/R) ] [ - A(s/R) ]"},
			Definitions: map[string]float64{
				"R": 1.456,
			},
		},
		Iterations: 10,
		Angle:      85,
		Heading:    90,
	},
	{
		Name:        "signal-tree",
		Description: "a context-sensitive tree growing on binary signals",
		Config: lsystem.Config{
			Axiom: "F 1 F 1 F 1",
			Rules: []string{
				"0 < 0 > 0 ? 1",
				"0 < 0 > 1 ? 1 [ - F 1 F 1 ]",
				"0 < 1 > 0 ? 1",
				"0 < 1 > 1 ? 1",
				"1 < 0 > 0 ? 0",
				"1 < 0 > 1 ? 1 F 1",
				"1 < 1 > 0 ? 1",
				"1 < 1 > 1 ? 0",
				"+ ? -",
				"- ? +",
			},
			Ignore: "+ - F",
		},
		Iterations: 30,
		Angle:      22.5,
		Heading:    90,
	},
	{
		Name:        "anabaena",
		Description: "development of the bacteria Anabaena catenula",
		Config: lsystem.Config{
			Axiom: "F(1,0,900) F(4,1,900) F(1,0,900)",
			Rules: []string{
				"F(s,t,c) : t == 1 and s >= 6 ? F(s/3*2,2,c) f(1) F(s/3,1,c)",
				"F(s,t,c) : t == 2 and s >= 6 ? F(s/3,2,c) f(1) F(s/3*2,1,c)",
				"F(h,i,k) < F(s,t,c) > F(o,p,r) : (s > 3.9 or c > 0.4) and t != 0 ? F(s+0.1,t,c+0.25*(k+r-3*c))",
				"F(h,i,k) < F(s,t,c) > F(o,p,r) : s < 3.9 and c < 0.4 and t != 0 ? F(1,0,900)",
				"F(s,t,c) : t == 0 and s <= 3 ? F(s*1.1,t,c)",
			},
			Ignore: "f ~ H",
		},
		Iterations: 200,
	},
}

// All returns the catalog in presentation order. The returned slice is
// shared; callers must not mutate it.
func All() []Entry {
	return entries
}

// Lookup finds an entry by name.
func Lookup(name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
