package connectivity

import (
	"fmt"
	"math/rand/v2"
)

// MutationOp selects one of the supported mutation algorithms.
type MutationOp int

const (
	// MutationShuffleIndexes swaps each position with another random
	// position with probability Prob.
	MutationShuffleIndexes MutationOp = iota
	// MutationUniformInteger redraws each position uniformly from the legal
	// range with probability Prob.
	MutationUniformInteger
	// MutationClusterSwitch redraws one replacement id per spatial cluster
	// and applies it to each member independently with probability Prob;
	// outliers redraw their own value individually.
	MutationClusterSwitch
)

func (op MutationOp) String() string {
	switch op {
	case MutationShuffleIndexes:
		return "ShuffleIndexes"
	case MutationUniformInteger:
		return "UniformInteger"
	case MutationClusterSwitch:
		return "ClusterSwitch"
	default:
		return fmt.Sprintf("MutationOp(%d)", int(op))
	}
}

// MutationConfig parameterizes a mutation call.
type MutationConfig struct {
	Op MutationOp
	// Prob is the independent per-position (or per-cluster-member)
	// mutation probability.
	Prob float64
}

// Mutate alters the genome in place according to the selected algorithm
// and re-establishes the canonical-form invariant before returning the
// same instance. MutationClusterSwitch requires a cluster index covering
// the full genome; the other algorithms ignore the clusters argument.
// The algorithm is dispatched before any genome state is touched.
func Mutate(rng *rand.Rand, v *Vector, cfg MutationConfig, clusters ClusterIndex) (*Vector, error) {
	values := v.Values()
	upper := v.domain.MaxNetworks() + 1

	switch cfg.Op {
	case MutationShuffleIndexes:
		mutShuffleIndexes(rng, values, cfg.Prob)
	case MutationUniformInteger:
		mutUniformInt(rng, values, cfg.Prob, upper)
	case MutationClusterSwitch:
		if len(clusters) != v.Len() {
			return nil, fmt.Errorf("%w: cluster index of length %d does not cover genome of length %d",
				ErrInvalidValue, len(clusters), v.Len())
		}
		mutClusterSwitch(rng, values, cfg.Prob, upper, clusters)
	default:
		return nil, fmt.Errorf("%w: mutation method %s has not been implemented for connectivity vectors",
			ErrUnsupportedAlgorithm, cfg.Op)
	}

	// The mutated ids stay within the legal range, so storing them cannot
	// fail; SetValues re-applies the zero-demand pin per position.
	_ = v.SetValues(values)
	return v.Reset(), nil
}

func mutShuffleIndexes(rng *rand.Rand, values []int, prob float64) {
	size := len(values)
	if size < 2 {
		return
	}
	for i := 0; i < size; i++ {
		if rng.Float64() < prob {
			j := rng.IntN(size - 1)
			if j >= i {
				j++
			}
			values[i], values[j] = values[j], values[i]
		}
	}
}

func mutUniformInt(rng *rand.Rand, values []int, prob float64, upper int) {
	for i := range values {
		if rng.Float64() < prob {
			values[i] = rng.IntN(upper)
		}
	}
}

func mutClusterSwitch(rng *rand.Rand, values []int, prob float64, upper int, clusters ClusterIndex) {
	// Switch whole clusters towards a shared replacement id; each member
	// still decides independently, so a cluster may switch only partially.
	for _, cluster := range clusters.Clusters() {
		replacement := rng.IntN(upper)
		for _, i := range clusters.Members(cluster) {
			if rng.Float64() < prob {
				values[i] = replacement
			}
		}
	}

	// Outliers redraw individually.
	for _, i := range clusters.Outliers() {
		if rng.Float64() < prob {
			values[i] = rng.IntN(upper)
		}
	}
}
