package connectivity

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// sixBuildingDomain gives the cluster-aware operators two clusters of
// realistic size plus outliers.
func sixBuildingDomain(t *testing.T) *Domain {
	t.Helper()
	domain, err := NewDomain(
		[]string{"B3001", "B3002", "B3003", "B3004", "B3005", "B3006"}, 3, nil)
	require.NoError(t, err)
	return domain
}

func TestMutatePreservesInvariants(t *testing.T) {
	domain := sixBuildingDomain(t)
	clusters := ClusterIndex{0, 0, 0, 1, 1, -1}

	cases := []struct {
		name string
		cfg  MutationConfig
	}{
		{"ShuffleIndexes", MutationConfig{Op: MutationShuffleIndexes, Prob: 0.5}},
		{"UniformInteger", MutationConfig{Op: MutationUniformInteger, Prob: 0.5}},
		{"ClusterSwitch", MutationConfig{Op: MutationClusterSwitch, Prob: 0.5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(3, 5))
			for i := 0; i < 100; i++ {
				v := Generate(domain, GenerateRandom, rng)
				length := v.Len()

				mutated, err := Mutate(rng, v, tc.cfg, clusters)
				require.NoError(t, err)
				require.Same(t, v, mutated, "mutation must be in place")
				require.Equal(t, length, mutated.Len())
				requireCanonical(t, mutated)
				for _, value := range mutated.Values() {
					require.GreaterOrEqual(t, value, 0)
					require.LessOrEqual(t, value, domain.MaxNetworks())
				}
			}
		})
	}
}

func TestMutateZeroProbabilityIsIdentity(t *testing.T) {
	domain := sixBuildingDomain(t)
	rng := rand.New(rand.NewPCG(1, 1))
	v := mustVector(t, domain, []int{1, 1, 2, 2, 0, 0})

	for _, op := range []MutationOp{MutationShuffleIndexes, MutationUniformInteger} {
		_, err := Mutate(rng, v, MutationConfig{Op: op, Prob: 0}, nil)
		require.NoError(t, err)
		require.Equal(t, []int{1, 1, 2, 2, 0, 0}, v.Values())
	}
}

func TestClusterSwitchAlignsClusterMembers(t *testing.T) {
	domain := sixBuildingDomain(t)
	clusters := ClusterIndex{0, 0, 0, 1, 1, -1}
	rng := rand.New(rand.NewPCG(9, 2))

	// With probability 1 every member of a cluster receives the cluster's
	// shared replacement id, whatever the random draws are.
	v := mustVector(t, domain, []int{1, 2, 1, 2, 1, 0})
	_, err := Mutate(rng, v, MutationConfig{Op: MutationClusterSwitch, Prob: 1}, clusters)
	require.NoError(t, err)

	values := v.Values()
	require.Equal(t, values[0], values[1])
	require.Equal(t, values[1], values[2])
	require.Equal(t, values[3], values[4])
}

func TestClusterSwitchRequiresClusterIndex(t *testing.T) {
	domain := sixBuildingDomain(t)
	rng := rand.New(rand.NewPCG(1, 2))
	v := Generate(domain, GenerateDisconnected, rng)

	_, err := Mutate(rng, v, MutationConfig{Op: MutationClusterSwitch, Prob: 0.5}, nil)
	require.ErrorIs(t, err, ErrInvalidValue)

	short := ClusterIndex{0, 0}
	_, err = Mutate(rng, v, MutationConfig{Op: MutationClusterSwitch, Prob: 0.5}, short)
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestMutateUnsupportedAlgorithm(t *testing.T) {
	domain := sixBuildingDomain(t)
	rng := rand.New(rand.NewPCG(1, 2))
	v := mustVector(t, domain, []int{1, 1, 2, 2, 0, 0})

	_, err := Mutate(rng, v, MutationConfig{Op: MutationOp(42), Prob: 0.5}, nil)
	require.ErrorIs(t, err, ErrUnsupportedAlgorithm)
	require.Contains(t, err.Error(), "MutationOp(42)")
	// Failed dispatch must not touch the genome.
	require.Equal(t, []int{1, 1, 2, 2, 0, 0}, v.Values())
}

func TestMutateReappliesZeroDemandPin(t *testing.T) {
	domain := testDomain(t)
	clusters := ClusterIndex{0, 0, 0, 0}
	rng := rand.New(rand.NewPCG(4, 4))

	for i := 0; i < 50; i++ {
		v := Generate(domain, GenerateRandom, rng)
		_, err := Mutate(rng, v, MutationConfig{Op: MutationClusterSwitch, Prob: 1}, clusters)
		require.NoError(t, err)
		require.Equal(t, 0, v.ValueAt(3), "zero-demand building must stay stand-alone")
	}
}
