// Package tracking provides ready-made observers for the selection step of
// the topology optimization: structured logging, objective-space summary
// statistics and Pareto-front plots.
package tracking

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/gonum/stat"
	"k8s.io/klog/v2"

	"github.com/Mar-Ges/CityEnergyAnalyst/pkg/connectivity"
	"github.com/Mar-Ges/CityEnergyAnalyst/pkg/multiobjective/framework"
	"github.com/Mar-Ges/CityEnergyAnalyst/pkg/multiobjective/util"
)

// LogTracker records each selection step via structured logging.
type LogTracker struct{}

func (LogTracker) ObserveSelection(selected []*connectivity.Vector, fronts [][]connectivity.SystemSolution) {
	solutions := 0
	for _, front := range fronts {
		solutions += len(front)
	}
	klog.V(2).InfoS("selected next generation",
		"selected", len(selected), "fronts", len(fronts), "solutions", solutions)

	for f, front := range fronts {
		klog.V(4).InfoS("non-dominated front", "front", f, "solutions", len(front))
	}
	for _, individual := range selected {
		klog.V(5).InfoS("selected topology", "genome", individual.Encode())
	}
}

// StatsTracker logs per-objective summary statistics of the first
// non-dominated front after each selection step.
type StatsTracker struct{}

func (StatsTracker) ObserveSelection(_ []*connectivity.Vector, fronts [][]connectivity.SystemSolution) {
	if len(fronts) == 0 || len(fronts[0]) == 0 {
		return
	}
	first := fronts[0]
	numObjectives := len(first[0].Fitness)

	for m := 0; m < numObjectives; m++ {
		values := make([]float64, len(first))
		for i, solution := range first {
			values[i] = solution.Fitness[m]
		}
		klog.V(2).InfoS("first front objective summary",
			"objective", m,
			"solutions", len(values),
			"mean", stat.Mean(values, nil),
			"stddev", stat.StdDev(values, nil))
	}
}

// PlotFunc renders the fronts of one selection step; util.PlotFronts
// satisfies it.
type PlotFunc func(path, title string, fronts [][]framework.ObjectiveSpacePoint) error

// PlotTracker renders the front structure of every selection step to an
// HTML scatter plot in OutputDir. Plot defaults to util.PlotFronts. Not
// safe for concurrent use.
type PlotTracker struct {
	OutputDir string
	Plot      PlotFunc

	step int
}

func (t *PlotTracker) ObserveSelection(_ []*connectivity.Vector, fronts [][]connectivity.SystemSolution) {
	plot := t.Plot
	if plot == nil {
		plot = util.PlotFronts
	}
	t.step++
	points := make([][]framework.ObjectiveSpacePoint, len(fronts))
	for f, front := range fronts {
		points[f] = make([]framework.ObjectiveSpacePoint, len(front))
		for i, solution := range front {
			points[f][i] = solution.Fitness
		}
	}

	path := filepath.Join(t.OutputDir, fmt.Sprintf("fronts_%03d.html", t.step))
	title := fmt.Sprintf("Non-dominated fronts, selection step %d", t.step)
	if err := plot(path, title, points); err != nil {
		klog.ErrorS(err, "rendering front plot failed", "path", path)
	}
}

// MultiTracker fans a selection step out to several trackers in order.
type MultiTracker []connectivity.Tracker

func (m MultiTracker) ObserveSelection(selected []*connectivity.Vector, fronts [][]connectivity.SystemSolution) {
	for _, tracker := range m {
		tracker.ObserveSelection(selected, fronts)
	}
}

var (
	_ connectivity.Tracker = LogTracker{}
	_ connectivity.Tracker = StatsTracker{}
	_ connectivity.Tracker = (*PlotTracker)(nil)
	_ connectivity.Tracker = MultiTracker{}
)
