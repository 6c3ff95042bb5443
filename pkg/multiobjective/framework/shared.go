package framework

import (
	"math"
	"sort"
)

// NonDominatedSort partitions the population into fronts: front 0 holds the
// solutions not dominated by any other, front 1 the solutions only dominated
// by front 0, and so on. Within a front, solutions keep the order in which
// they appear in the input.
func NonDominatedSort(population []Solution) [][]Solution {
	var fronts [][]Solution
	dominated := make(map[int][]int)
	domCount := make([]int, len(population))

	// Calculate domination for each individual
	for i := 0; i < len(population); i++ {
		dominated[i] = []int{}
		for j := 0; j < len(population); j++ {
			if i != j {
				if Dominates(population[i].Objectives(), population[j].Objectives()) {
					dominated[i] = append(dominated[i], j)
				} else if Dominates(population[j].Objectives(), population[i].Objectives()) {
					domCount[i]++
				}
			}
		}
	}

	// Find first front
	currentFront := []Solution{}
	currentFrontIndices := []int{}
	for i := 0; i < len(population); i++ {
		if domCount[i] == 0 {
			currentFront = append(currentFront, population[i])
			currentFrontIndices = append(currentFrontIndices, i)
		}
	}
	fronts = append(fronts, currentFront)

	// Find subsequent fronts
	for len(currentFront) > 0 {
		nextFront := []Solution{}
		nextFrontIndices := []int{}
		for _, idx := range currentFrontIndices {
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					nextFront = append(nextFront, population[dominatedIdx])
					nextFrontIndices = append(nextFrontIndices, dominatedIdx)
				}
			}
		}
		if len(nextFront) > 0 {
			// Restore input order inside the front
			sort.Ints(nextFrontIndices)
			for i, idx := range nextFrontIndices {
				nextFront[i] = population[idx]
			}
			fronts = append(fronts, nextFront)
		}
		currentFront = nextFront
		currentFrontIndices = nextFrontIndices
	}

	return fronts
}

// Dominates checks if point a dominates point b
func Dominates(a, b ObjectiveSpacePoint) bool {
	better := false
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better
}

// CrowdingDistance calculates the crowding distance for each solution of a
// front, returned in the same order as the input. Boundary solutions get
// +Inf so truncation keeps the extremes of the front.
func CrowdingDistance(front []Solution) []float64 {
	distances := make([]float64, len(front))
	if len(front) <= 2 {
		for i := range distances {
			distances[i] = math.Inf(1)
		}
		return distances
	}

	numObjectives := len(front[0].Objectives())
	order := make([]int, len(front))

	for m := 0; m < numObjectives; m++ {
		for i := range order {
			order[i] = i
		}
		// Sort by each objective
		sort.Slice(order, func(i, j int) bool {
			return front[order[i]].Objectives()[m] < front[order[j]].Objectives()[m]
		})

		// Set boundary points to infinity
		distances[order[0]] = math.Inf(1)
		distances[order[len(order)-1]] = math.Inf(1)

		lo := front[order[0]].Objectives()[m]
		hi := front[order[len(order)-1]].Objectives()[m]
		objectiveRange := hi - lo
		if objectiveRange == 0 {
			continue
		}

		// Calculate distance for intermediate points
		for i := 1; i < len(order)-1; i++ {
			next := front[order[i+1]].Objectives()[m]
			prev := front[order[i-1]].Objectives()[m]
			distances[order[i]] += (next - prev) / objectiveRange
		}
	}

	return distances
}
