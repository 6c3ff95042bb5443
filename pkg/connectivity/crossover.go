package connectivity

import (
	"fmt"
	"math/rand/v2"
)

// CrossoverOp selects one of the supported recombination algorithms.
type CrossoverOp int

const (
	// CrossoverOnePoint swaps the tails of both genomes after one random
	// cut point.
	CrossoverOnePoint CrossoverOp = iota
	// CrossoverTwoPoint swaps the segment between two random cut points.
	CrossoverTwoPoint
	// CrossoverUniform swaps each position independently with probability
	// Prob.
	CrossoverUniform
	// CrossoverClusterSwap swaps whole spatial clusters between the
	// genomes, each cluster with probability Prob; outliers are never
	// touched.
	CrossoverClusterSwap
	// CrossoverClusterAlignment swaps positions where each genome already
	// matches the other genome's prevailing value for the position's
	// cluster, each with probability Prob; outliers are excluded.
	CrossoverClusterAlignment
)

func (op CrossoverOp) String() string {
	switch op {
	case CrossoverOnePoint:
		return "OnePoint"
	case CrossoverTwoPoint:
		return "TwoPoint"
	case CrossoverUniform:
		return "Uniform"
	case CrossoverClusterSwap:
		return "ClusterSwap"
	case CrossoverClusterAlignment:
		return "ClusterAlignment"
	default:
		return fmt.Sprintf("CrossoverOp(%d)", int(op))
	}
}

// CrossoverConfig parameterizes a recombination call.
type CrossoverConfig struct {
	Op CrossoverOp
	// Prob is the independent swap probability for the algorithms that
	// decide position by position or cluster by cluster.
	Prob float64
}

// Mate recombines two genomes in place according to the selected algorithm
// and re-establishes the canonical-form invariant on both before returning
// the same pair. The cluster-aware algorithms require a cluster index
// covering the full genome. The algorithm is dispatched before any genome
// state is touched.
func Mate(rng *rand.Rand, a, b *Vector, cfg CrossoverConfig, clusters ClusterIndex) (*Vector, *Vector, error) {
	if a.Len() != b.Len() {
		return nil, nil, fmt.Errorf("%w: cannot mate genomes of lengths %d and %d",
			ErrInvalidValue, a.Len(), b.Len())
	}
	va, vb := a.Values(), b.Values()

	switch cfg.Op {
	case CrossoverOnePoint:
		cxOnePoint(rng, va, vb)
	case CrossoverTwoPoint:
		cxTwoPoint(rng, va, vb)
	case CrossoverUniform:
		cxUniform(rng, va, vb, cfg.Prob)
	case CrossoverClusterSwap, CrossoverClusterAlignment:
		if len(clusters) != a.Len() {
			return nil, nil, fmt.Errorf("%w: cluster index of length %d does not cover genome of length %d",
				ErrInvalidValue, len(clusters), a.Len())
		}
		if cfg.Op == CrossoverClusterSwap {
			cxClusterSwap(rng, va, vb, cfg.Prob, clusters)
		} else {
			cxClusterAlignment(rng, va, vb, cfg.Prob, clusters)
		}
	default:
		return nil, nil, fmt.Errorf("%w: crossover method %s has not been implemented for connectivity vectors",
			ErrUnsupportedAlgorithm, cfg.Op)
	}

	// The recombined ids stay within the shared legal range, so storing
	// them cannot fail; SetValues re-applies the zero-demand pin.
	_ = a.SetValues(va)
	_ = b.SetValues(vb)
	return a.Reset(), b.Reset(), nil
}

func cxOnePoint(rng *rand.Rand, va, vb []int) {
	size := len(va)
	if size < 2 {
		return
	}
	point := 1 + rng.IntN(size-1)
	for i := point; i < size; i++ {
		va[i], vb[i] = vb[i], va[i]
	}
}

func cxTwoPoint(rng *rand.Rand, va, vb []int) {
	size := len(va)
	if size < 2 {
		return
	}
	p1 := 1 + rng.IntN(size)
	p2 := 1 + rng.IntN(size-1)
	if p2 >= p1 {
		p2++
	} else {
		p1, p2 = p2, p1
	}
	for i := p1; i < p2; i++ {
		va[i], vb[i] = vb[i], va[i]
	}
}

func cxUniform(rng *rand.Rand, va, vb []int, prob float64) {
	for i := range va {
		if rng.Float64() < prob {
			va[i], vb[i] = vb[i], va[i]
		}
	}
}

func cxClusterSwap(rng *rand.Rand, va, vb []int, prob float64, clusters ClusterIndex) {
	for _, cluster := range clusters.Clusters() {
		if rng.Float64() < prob {
			for _, i := range clusters.Members(cluster) {
				va[i], vb[i] = vb[i], va[i]
			}
		}
	}
}

// cxClusterAlignment swaps the positions where the genomes deviate from
// their own cluster's prevailing network id in a way a swap would fix:
// genome a holds genome b's cluster mode at the position and vice versa.
func cxClusterAlignment(rng *rand.Rand, va, vb []int, prob float64, clusters ClusterIndex) {
	modesA := clusterModes(va, clusters)
	modesB := clusterModes(vb, clusters)

	for i := range va {
		if modesA[i] < 0 || modesB[i] < 0 {
			continue
		}
		if va[i] == modesB[i] && vb[i] == modesA[i] {
			if rng.Float64() < prob {
				va[i], vb[i] = vb[i], va[i]
			}
		}
	}
}

// clusterModes returns, per genome position, the most frequent network id
// within the position's cluster. Ties break towards the value encountered
// first in genome order. Outlier positions get -1.
func clusterModes(values []int, clusters ClusterIndex) []int {
	modes := make([]int, len(values))
	for i := range modes {
		modes[i] = -1
	}
	for _, cluster := range clusters.Clusters() {
		members := clusters.Members(cluster)
		counts := make(map[int]int, len(members))
		max := 0
		for _, i := range members {
			counts[values[i]]++
			if counts[values[i]] > max {
				max = counts[values[i]]
			}
		}
		mode := values[members[0]]
		for _, i := range members {
			if counts[values[i]] == max {
				mode = values[i]
				break
			}
		}
		for _, i := range members {
			modes[i] = mode
		}
	}
	return modes
}
