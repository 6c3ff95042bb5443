package connectivity

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/Mar-Ges/CityEnergyAnalyst/pkg/multiobjective/framework"
)

// Vector is the connectivity vector genome: one Connection per building of
// the domain, in genome order. Mutation and crossover operate on it in
// place; the canonical-form invariant (no network with a single member) is
// re-established after every bulk change.
type Vector struct {
	domain      *Domain
	connections []Connection
	fitness     framework.ObjectiveSpacePoint
}

// GenerationMethod selects how Generate fills a new genome.
type GenerationMethod int

const (
	// GenerateDisconnected assigns every building to no network.
	GenerateDisconnected GenerationMethod = iota
	// GenerateRandom draws every network id uniformly from the legal range.
	GenerateRandom
)

// NewVector builds a genome from a list of connections. A nil or empty
// list yields a genome with a single default connection for the domain's
// first building, matching the default Connection of an empty chromosome.
// The connection list is canonicalized before it is stored.
func NewVector(domain *Domain, connections []Connection) (*Vector, error) {
	if domain == nil {
		return nil, fmt.Errorf("%w: a connectivity vector requires a domain", ErrInvalidValue)
	}
	if len(connections) == 0 {
		def, err := NewConnection(domain, 0, domain.buildings[0])
		if err != nil {
			return nil, err
		}
		connections = []Connection{def}
	}

	held := make([]Connection, len(connections))
	for i, connection := range connections {
		if !domain.HasBuilding(connection.Building()) {
			return nil, fmt.Errorf("%w: connection %d references building %q outside the domain",
				ErrInvalidValue, i, connection.Building())
		}
		if id := connection.NetworkID(); id < 0 || id > domain.MaxNetworks() {
			return nil, fmt.Errorf("%w: connection %d holds network id %d outside [0, %d]",
				ErrInvalidValue, i, id, domain.MaxNetworks())
		}
		held[i] = connection
	}

	v := &Vector{domain: domain, connections: held}
	v.canonicalize()
	return v, nil
}

// Generate creates a full-length genome. GenerateRandom draws each
// building's network id independently and uniformly from [0, MaxNetworks];
// any other method produces the fully disconnected topology.
func Generate(domain *Domain, method GenerationMethod, rng *rand.Rand) *Vector {
	connections := make([]Connection, domain.NumBuildings())
	for i, building := range domain.buildings {
		id := 0
		if method == GenerateRandom && !domain.ZeroDemand(building) {
			id = rng.IntN(domain.MaxNetworks() + 1)
		}
		connections[i] = Connection{building: building, networkID: id}
	}
	v := &Vector{domain: domain, connections: connections}
	v.canonicalize()
	return v
}

// Domain returns the domain the genome was built for.
func (v *Vector) Domain() *Domain {
	return v.domain
}

// Len returns the genome length.
func (v *Vector) Len() int {
	return len(v.connections)
}

// Connections returns a copy of the genome's connections in genome order.
func (v *Vector) Connections() []Connection {
	return append([]Connection(nil), v.connections...)
}

// Values returns the network ids in genome order, as a copy.
func (v *Vector) Values() []int {
	values := make([]int, len(v.connections))
	for i, connection := range v.connections {
		values[i] = connection.networkID
	}
	return values
}

// SetValues replaces all network ids at once. The ids are validated
// against the domain range before anything is stored, singleton networks
// are collapsed to 0 and the zero-demand pin is re-applied per position.
func (v *Vector) SetValues(values []int) error {
	if len(values) != len(v.connections) {
		return fmt.Errorf("%w: expected %d network ids, got %d",
			ErrInvalidValue, len(v.connections), len(values))
	}
	for i, value := range values {
		if value < 0 || value > v.domain.MaxNetworks() {
			return fmt.Errorf("%w: network id at position %d must be in [0, %d], got %d",
				ErrInvalidValue, i, v.domain.MaxNetworks(), value)
		}
	}

	collapsed := collapseSingletons(values)
	for i, value := range collapsed {
		if err := v.connections[i].SetNetworkID(v.domain, value); err != nil {
			return err
		}
	}
	return nil
}

// ValueAt returns the network id at one genome position.
func (v *Vector) ValueAt(i int) int {
	return v.connections[i].networkID
}

// SetValueAt assigns the network id at one genome position, re-running the
// range check and the zero-demand pin. Position-wise assignment does not
// re-canonicalize; operators call Reset once they are done.
func (v *Vector) SetValueAt(i, value int) error {
	if i < 0 || i >= len(v.connections) {
		return fmt.Errorf("%w: position %d outside genome of length %d",
			ErrInvalidValue, i, len(v.connections))
	}
	return v.connections[i].SetNetworkID(v.domain, value)
}

// Range returns the network ids of positions [lo, hi), as a copy.
func (v *Vector) Range(lo, hi int) []int {
	values := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		values = append(values, v.connections[i].networkID)
	}
	return values
}

// SetRange assigns consecutive network ids starting at position lo, with
// the same per-position validation as SetValues.
func (v *Vector) SetRange(lo int, values []int) error {
	if lo < 0 || lo+len(values) > len(v.connections) {
		return fmt.Errorf("%w: range [%d, %d) outside genome of length %d",
			ErrInvalidValue, lo, lo+len(values), len(v.connections))
	}
	for i, value := range values {
		if value < 0 || value > v.domain.MaxNetworks() {
			return fmt.Errorf("%w: network id at position %d must be in [0, %d], got %d",
				ErrInvalidValue, lo+i, v.domain.MaxNetworks(), value)
		}
	}
	for i, value := range values {
		if err := v.connections[lo+i].SetNetworkID(v.domain, value); err != nil {
			return err
		}
	}
	return nil
}

// Reset re-applies the canonical-form invariant after an operator mutated
// the genome position-wise: a network only a single building is connected
// to is dissolved and the building made stand-alone. Idempotent.
func (v *Vector) Reset() *Vector {
	v.canonicalize()
	return v
}

// Encode returns the genome as a single string, network ids joined by
// underscores in genome order. Used as the deduplication key during
// selection.
func (v *Vector) Encode() string {
	parts := make([]string, len(v.connections))
	for i, connection := range v.connections {
		parts[i] = strconv.Itoa(connection.networkID)
	}
	return strings.Join(parts, "_")
}

// Equal reports whether two genomes carry the same network ids in the same
// order.
func (v *Vector) Equal(other *Vector) bool {
	if other == nil || len(v.connections) != len(other.connections) {
		return false
	}
	for i := range v.connections {
		if v.connections[i].networkID != other.connections[i].networkID {
			return false
		}
	}
	return true
}

// Fitness returns the fitness handle attached by the external evaluator,
// nil if the genome has not been evaluated yet.
func (v *Vector) Fitness() framework.ObjectiveSpacePoint {
	return v.fitness
}

// SetFitness attaches an externally computed fitness to the genome.
func (v *Vector) SetFitness(fitness framework.ObjectiveSpacePoint) {
	v.fitness = fitness
}

func (v *Vector) canonicalize() {
	counts := make(map[int]int, len(v.connections))
	for _, connection := range v.connections {
		if connection.networkID != 0 {
			counts[connection.networkID]++
		}
	}
	for i := range v.connections {
		if id := v.connections[i].networkID; id != 0 && counts[id] == 1 {
			v.connections[i].networkID = 0
		}
	}
}

// collapseSingletons rewrites network ids held by exactly one position to
// 0, leaving the input untouched.
func collapseSingletons(values []int) []int {
	counts := make(map[int]int, len(values))
	for _, value := range values {
		if value != 0 {
			counts[value]++
		}
	}
	collapsed := make([]int, len(values))
	for i, value := range values {
		if value != 0 && counts[value] == 1 {
			collapsed[i] = 0
		} else {
			collapsed[i] = value
		}
	}
	return collapsed
}
