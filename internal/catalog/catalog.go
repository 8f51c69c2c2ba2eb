// Package catalog registers every exercise of this module, with a demo built
// from config fixtures, in a kata.Catalog.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/katas/binsearch"
	"github.com/katalvlaran/katas/charcount"
	"github.com/katalvlaran/katas/dijkstra"
	"github.com/katalvlaran/katas/internal/config"
	"github.com/katalvlaran/katas/kata"
	"github.com/katalvlaran/katas/palindrome"
	"github.com/katalvlaran/katas/pets"
	"github.com/katalvlaran/katas/reverse"
	"github.com/katalvlaran/katas/twosum"
)

// ErrUnknownExercise indicates a requested name that is not registered.
var ErrUnknownExercise = errors.New("catalog: unknown exercise")

// Build returns a catalog holding one exercise per package, in a fixed order.
func Build(cfg *config.Config) (*kata.Catalog, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := kata.NewCatalog()
	for _, e := range exercises(cfg) {
		if err := c.Register(e); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func exercises(cfg *config.Config) []kata.Exercise {
	return []kata.Exercise{
		{
			Name:    "two-sum",
			Summary: "indices of the first pair adding up to a target",
			Demo: func() (string, error) {
				return fmt.Sprint(twosum.TwoSum(cfg.TwoSum.Nums, cfg.TwoSum.Target)), nil
			},
		},
		{
			Name:    "palindrome",
			Summary: "alphanumeric, case-insensitive palindrome check",
			Demo: func() (string, error) {
				parts := make([]string, 0, len(cfg.Palindrome.Phrases))
				for _, p := range cfg.Palindrome.Phrases {
					parts = append(parts, fmt.Sprintf("%q=%t", p, palindrome.IsPalindrome(p)))
				}
				return strings.Join(parts, " "), nil
			},
		},
		{
			Name:    "binary-search",
			Summary: "index of a target in an ascending slice, or -1",
			Demo: func() (string, error) {
				return fmt.Sprint(binsearch.BinarySearch(cfg.BinarySearch.Sorted, cfg.BinarySearch.Target)), nil
			},
		},
		{
			Name:    "dijkstra",
			Summary: "single-source shortest distances, non-negative weights",
			Demo: func() (string, error) {
				dist, err := dijkstra.Distances(graphOf(cfg.Dijkstra), cfg.Dijkstra.Start)
				if err != nil {
					return "", err
				}
				return formatDistances(dist), nil
			},
		},
		{
			Name:    "dijkstra-compact",
			Summary: "shortest distances without predecessor storage",
			Status:  kata.Stub,
			Demo: func() (string, error) {
				dist, _, err := dijkstra.Dijkstra(graphOf(cfg.Dijkstra), cfg.Dijkstra.Start,
					dijkstra.WithMemoryMode(dijkstra.MemoryModeCompact))
				if err != nil {
					return "", err
				}
				return fmt.Sprint(dist), nil
			},
		},
		{
			Name:    "reverse-string",
			Summary: "in-place two-pointer reversal",
			Demo: func() (string, error) {
				s := []rune(cfg.Reverse.Text)
				reverse.Reverse(s)
				return string(s), nil
			},
		},
		{
			Name:    "char-count",
			Summary: "occurrences of each letter a-z, case-insensitive",
			Demo: func() (string, error) {
				return fmt.Sprint(charcount.Sorted(charcount.CountCharacters(cfg.CharCount.Text))), nil
			},
		},
		{
			Name:    "pet-registry",
			Summary: "validated pets, case-insensitive lookup, birthdays",
			Demo:    func() (string, error) { return petsDemo(cfg.Pets) },
		},
	}
}

// graphOf converts config edges into a dijkstra.Graph.
func graphOf(dc config.DijkstraConfig) dijkstra.Graph {
	g := make(dijkstra.Graph, len(dc.Graph))
	for u, edges := range dc.Graph {
		out := make([]dijkstra.Edge, 0, len(edges))
		for _, e := range edges {
			out = append(out, dijkstra.Edge{To: e.To, Weight: e.Weight})
		}
		g[u] = out
	}

	return g
}

// formatDistances prints Infinity as "inf".
func formatDistances(dist []int64) string {
	parts := make([]string, len(dist))
	for i, d := range dist {
		if d == dijkstra.Infinity {
			parts[i] = "inf"
			continue
		}
		parts[i] = fmt.Sprint(d)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// petsDemo registers the configured pets, celebrates a birthday for the
// looked-up pet, and lists every description.
func petsDemo(pc config.PetsConfig) (string, error) {
	r := pets.NewRegistry()
	for _, in := range pc.Pets {
		p, err := pets.NewPet(in.Name, in.Type, in.Age)
		if err != nil {
			return "", err
		}
		if _, err := r.AddPet(p); err != nil {
			return "", err
		}
	}
	if p, ok := r.FindByName(pc.Lookup); ok {
		p.HaveBirthday()
	}

	return strings.Join(r.DescriptionList(), "; "), nil
}

// Select returns the exercises named in names, or all of them when names is empty.
func Select(c *kata.Catalog, names []string) ([]kata.Exercise, error) {
	if len(names) == 0 {
		return c.All(), nil
	}
	out := make([]kata.Exercise, 0, len(names))
	for _, n := range names {
		e, ok := c.Lookup(n)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownExercise, n)
		}
		out = append(out, e)
	}

	return out, nil
}

// Run executes each exercise and logs its outcome.
func Run(exs []kata.Exercise, logger *zap.Logger) []kata.Outcome {
	if logger == nil {
		logger = zap.NewNop()
	}
	out := make([]kata.Outcome, 0, len(exs))
	for _, e := range exs {
		o := kata.Run(e)
		fields := []zap.Field{
			zap.String("exercise", o.Name),
			zap.Stringer("status", e.Status),
			zap.Stringer("verdict", o.Verdict),
		}
		switch o.Verdict {
		case kata.Passed:
			logger.Debug("demo passed", append(fields, zap.String("output", o.Output))...)
		case kata.Unimplemented:
			logger.Info("demo not implemented", append(fields, zap.Error(o.Err))...)
		default:
			logger.Warn("demo failed", append(fields, zap.Error(o.Err))...)
		}
		out = append(out, o)
	}

	return out
}
