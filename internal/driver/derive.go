// Package driver ties configuration, derivation and persistence together for
// the CLI: it turns a manifest or catalog entry into a derived sequence,
// measures the phases, and snapshots long derivations to disk.
package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"lsys/internal/lsystem"
	"lsys/internal/observ"
	"lsys/internal/project"
)

// Request names one derivation job.
type Request struct {
	Name        string
	Config      lsystem.Config
	Generations int
}

// Result is a finished derivation.
type Result struct {
	Name        string
	Generations int
	Sequence    []lsystem.Module
	Timings     observ.Report
}

// FromManifest converts a loaded manifest into a derivation request.
func FromManifest(m *project.Manifest) Request {
	sys := m.Config.System
	name := sys.Name
	if name == "" {
		name = m.Root
	}
	return Request{
		Name: name,
		Config: lsystem.Config{
			Axiom:       sys.Axiom,
			Rules:       sys.Rules,
			Ignore:      sys.Ignore,
			Definitions: sys.Definitions,
			Seed:        sys.Seed,
		},
		Generations: sys.Iterations,
	}
}

// Derive parses the system and runs it for the requested generation count.
func Derive(req Request) (*Result, error) {
	timer := observ.NewTimer()

	idx := timer.Begin("parse")
	sys, err := lsystem.New(req.Config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Name, err)
	}
	timer.End(idx, fmt.Sprintf("%d rules", len(sys.Rules())))

	idx = timer.Begin("derive")
	for g := 0; g < req.Generations; g++ {
		if _, err := sys.NextGeneration(); err != nil {
			return nil, fmt.Errorf("%s: generation %d: %w", req.Name, g+1, err)
		}
	}
	timer.End(idx, fmt.Sprintf("%d modules", len(sys.Current())))

	return &Result{
		Name:        req.Name,
		Generations: sys.Generation(),
		Sequence:    sys.Current(),
		Timings:     timer.Report(),
	}, nil
}

// DeriveAll runs the requests on up to jobs goroutines. Each system owns its
// sequence and random source, so requests never share mutable state. The
// first failure cancels the rest; results keep request order.
func DeriveAll(ctx context.Context, reqs []Request, jobs int) ([]*Result, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	results := make([]*Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(reqs), 1)))

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := Derive(req)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
