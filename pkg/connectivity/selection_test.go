package connectivity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Mar-Ges/CityEnergyAnalyst/pkg/multiobjective/framework"
)

type recordingTracker struct {
	selected []*Vector
	fronts   [][]SystemSolution
	calls    int
}

func (r *recordingTracker) ObserveSelection(selected []*Vector, fronts [][]SystemSolution) {
	r.selected = selected
	r.fronts = fronts
	r.calls++
}

func solution(key string, objectives ...float64) SystemSolution {
	return SystemSolution{GenomeKey: key, Fitness: framework.ObjectiveSpacePoint(objectives)}
}

func TestSelectFrontPriority(t *testing.T) {
	domain := testDomainNoPins(t)
	x := mustVector(t, domain, []int{1, 1, 0, 0})
	y := mustVector(t, domain, []int{0, 0, 1, 1})

	solutions := map[string][]SystemSolution{
		x.Encode(): {solution(x.Encode(), 1, 1)},
		y.Encode(): {solution(y.Encode(), 2, 2)},
	}

	selected := Select([]*Vector{y, x}, solutions, 1, nil)
	require.Len(t, selected, 1)
	require.Same(t, x, selected[0], "the front-0 genome wins regardless of population order")
}

func TestSelectSizeBoundAndDeduplication(t *testing.T) {
	domain := testDomainNoPins(t)
	x := mustVector(t, domain, []int{1, 1, 0, 0})
	xDup := mustVector(t, domain, []int{1, 1, 0, 0})
	y := mustVector(t, domain, []int{0, 0, 1, 1})

	solutions := map[string][]SystemSolution{
		x.Encode(): {solution(x.Encode(), 1, 2)},
		y.Encode(): {solution(y.Encode(), 2, 1)},
	}

	selected := Select([]*Vector{x, xDup, y}, solutions, 10, nil)
	require.Len(t, selected, 2, "value-equal genomes are merged")

	seen := make(map[string]bool)
	for _, individual := range selected {
		require.False(t, seen[individual.Encode()], "duplicate canonical encoding selected")
		seen[individual.Encode()] = true
	}
	// Later duplicates overwrite earlier ones in the lookup.
	require.Same(t, xDup, selected[0])
}

func TestSelectStopsMidFront(t *testing.T) {
	domain := testDomainNoPins(t)
	x := mustVector(t, domain, []int{1, 1, 0, 0})
	y := mustVector(t, domain, []int{0, 0, 1, 1})
	z := mustVector(t, domain, []int{1, 1, 1, 1})

	// All three solutions are mutually non-dominated: one front.
	solutions := map[string][]SystemSolution{
		x.Encode(): {solution(x.Encode(), 1, 3)},
		y.Encode(): {solution(y.Encode(), 2, 2)},
		z.Encode(): {solution(z.Encode(), 3, 1)},
	}

	selected := Select([]*Vector{x, y, z}, solutions, 2, nil)
	require.Len(t, selected, 2)
	require.Same(t, x, selected[0], "within a front, combined-list order decides")
	require.Same(t, y, selected[1])
}

func TestSelectMultipleSolutionsPerGenome(t *testing.T) {
	domain := testDomainNoPins(t)
	x := mustVector(t, domain, []int{1, 1, 0, 0})
	y := mustVector(t, domain, []int{0, 0, 1, 1})

	// x's best solution sits in front 0, its second in front 1 along with
	// y's; x must not be selected twice.
	solutions := map[string][]SystemSolution{
		x.Encode(): {solution(x.Encode(), 1, 1), solution(x.Encode(), 3, 3)},
		y.Encode(): {solution(y.Encode(), 2, 2)},
	}

	selected := Select([]*Vector{x, y}, solutions, 2, nil)
	require.Len(t, selected, 2)
	require.Same(t, x, selected[0])
	require.Same(t, y, selected[1])
}

func TestSelectIgnoresSolutionsOutsidePopulation(t *testing.T) {
	domain := testDomainNoPins(t)
	x := mustVector(t, domain, []int{1, 1, 0, 0})

	// The stray solution dominates x's, pushing it to front 1, but its
	// genome is not part of the population and cannot be selected.
	solutions := map[string][]SystemSolution{
		x.Encode(): {solution(x.Encode(), 2, 2)},
		"2_2_0_0":  {solution("2_2_0_0", 1, 1)},
	}

	tracker := &recordingTracker{}
	selected := Select([]*Vector{x}, solutions, 5, tracker)
	require.Len(t, selected, 1)
	require.Same(t, x, selected[0])
	require.Len(t, tracker.fronts, 2, "the stray solution still shapes the fronts")
}

func TestSelectReportsToTracker(t *testing.T) {
	domain := testDomainNoPins(t)
	x := mustVector(t, domain, []int{1, 1, 0, 0})
	y := mustVector(t, domain, []int{0, 0, 1, 1})

	solutions := map[string][]SystemSolution{
		x.Encode(): {solution(x.Encode(), 1, 1)},
		y.Encode(): {solution(y.Encode(), 2, 2)},
	}

	tracker := &recordingTracker{}
	selected := Select([]*Vector{x, y}, solutions, 1, tracker)

	require.Equal(t, 1, tracker.calls)
	require.Equal(t, selected, tracker.selected)

	wantFronts := [][]SystemSolution{
		{solution(x.Encode(), 1, 1)},
		{solution(y.Encode(), 2, 2)},
	}
	if diff := cmp.Diff(wantFronts, tracker.fronts); diff != "" {
		t.Errorf("front structure mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectEmptyPopulation(t *testing.T) {
	selected := Select(nil, nil, 3, nil)
	require.Empty(t, selected)
}
