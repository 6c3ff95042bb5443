package connectivity

import (
	"sort"

	"github.com/Mar-Ges/CityEnergyAnalyst/pkg/multiobjective/framework"
)

// SystemSolution is one non-dominated supply-system combination found by
// the external evaluator for a given topology. A single topology usually
// yields several such combinations; selection ranks all of them together.
type SystemSolution struct {
	// GenomeKey is the Encode() string of the originating genome.
	GenomeKey string
	// Fitness holds the solution's objective values, minimization
	// convention.
	Fitness framework.ObjectiveSpacePoint
}

// Objectives implements framework.Solution.
func (s SystemSolution) Objectives() framework.ObjectiveSpacePoint {
	return s.Fitness
}

// Evaluator scores a topology, returning the non-dominated supply-system
// combinations it admits. It is an external collaborator of this package.
type Evaluator interface {
	Evaluate(v *Vector) ([]SystemSolution, error)
}

// Tracker observes the outcome of a selection step: the population picked
// for the next generation together with the full front structure that
// produced it. Purely an observer.
type Tracker interface {
	ObserveSelection(selected []*Vector, fronts [][]SystemSolution)
}

// Select picks the next generation out of the evaluated population by
// non-dominated sorting of all supply-system solutions.
//
// The population is deduplicated by canonical encoding (later duplicates
// win), the solutions of all genomes are combined in population order and
// sorted into fronts, and genomes are then taken front by front, each at
// most once, in the order their solutions first appear in the combined
// list. Selection stops as soon as populationSize genomes are picked,
// even mid-front. Solutions keyed to genomes outside the population still
// take part in the sorting but can never be selected.
func Select(population []*Vector, solutionsByGenome map[string][]SystemSolution, populationSize int, tracker Tracker) []*Vector {
	byKey := make(map[string]*Vector, len(population))
	order := make([]string, 0, len(population))
	for _, individual := range population {
		key := individual.Encode()
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = individual
	}

	// Solutions of genomes absent from the population come last, in key
	// order, to keep the combined list deterministic.
	var strayKeys []string
	for key := range solutionsByGenome {
		if _, inPopulation := byKey[key]; !inPopulation {
			strayKeys = append(strayKeys, key)
		}
	}
	sort.Strings(strayKeys)

	var combined []framework.Solution
	for _, key := range append(order, strayKeys...) {
		for _, solution := range solutionsByGenome[key] {
			combined = append(combined, solution)
		}
	}

	solutionFronts := framework.NonDominatedSort(combined)
	fronts := make([][]SystemSolution, len(solutionFronts))
	for f, front := range solutionFronts {
		fronts[f] = make([]SystemSolution, len(front))
		for i, solution := range front {
			fronts[f][i] = solution.(SystemSolution)
		}
	}

	selected := make([]*Vector, 0, populationSize)
	for _, front := range fronts {
		if len(selected) >= populationSize {
			break
		}
		for _, solution := range front {
			if len(selected) >= populationSize {
				break
			}
			individual, available := byKey[solution.GenomeKey]
			if !available {
				continue
			}
			selected = append(selected, individual)
			delete(byKey, solution.GenomeKey)
		}
	}

	if tracker != nil {
		tracker.ObserveSelection(selected, fronts)
	}
	return selected
}
