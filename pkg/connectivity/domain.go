package connectivity

import "fmt"

// Domain is the immutable optimization domain configuration: the ordered
// candidate buildings, the maximum number of shared thermal networks and
// the set of buildings without thermal demand. A Domain fixes the legal
// value ranges of every Connection and Vector constructed from it.
type Domain struct {
	buildings   []string
	position    map[string]int
	maxNetworks int
	zeroDemand  map[string]bool
}

// NewDomain validates and builds a Domain. Building identifiers must be
// unique and non-empty, maxNetworks must be non-negative and every
// zero-demand building must be part of the domain.
func NewDomain(buildings []string, maxNetworks int, zeroDemand []string) (*Domain, error) {
	if len(buildings) == 0 {
		return nil, fmt.Errorf("%w: a domain requires at least one building", ErrInvalidValue)
	}
	if maxNetworks < 0 {
		return nil, fmt.Errorf("%w: maximum number of networks must be non-negative, got %d",
			ErrInvalidValue, maxNetworks)
	}

	position := make(map[string]int, len(buildings))
	for i, building := range buildings {
		if building == "" {
			return nil, fmt.Errorf("%w: empty building identifier at position %d", ErrInvalidValue, i)
		}
		if _, duplicate := position[building]; duplicate {
			return nil, fmt.Errorf("%w: duplicate building identifier %q", ErrInvalidValue, building)
		}
		position[building] = i
	}

	demandless := make(map[string]bool, len(zeroDemand))
	for _, building := range zeroDemand {
		if _, known := position[building]; !known {
			return nil, fmt.Errorf("%w: zero-demand building %q is not part of the domain",
				ErrInvalidValue, building)
		}
		demandless[building] = true
	}

	return &Domain{
		buildings:   append([]string(nil), buildings...),
		position:    position,
		maxNetworks: maxNetworks,
		zeroDemand:  demandless,
	}, nil
}

// Buildings returns the building identifiers in genome order.
func (d *Domain) Buildings() []string {
	return append([]string(nil), d.buildings...)
}

// NumBuildings returns the genome length of the domain.
func (d *Domain) NumBuildings() int {
	return len(d.buildings)
}

// MaxNetworks returns the highest legal network id; 0 means no shared
// networks are allowed at all.
func (d *Domain) MaxNetworks() int {
	return d.maxNetworks
}

// HasBuilding reports whether the identifier belongs to the domain.
func (d *Domain) HasBuilding(building string) bool {
	_, ok := d.position[building]
	return ok
}

// ZeroDemand reports whether the building has no thermal demand and must
// therefore stay stand-alone.
func (d *Domain) ZeroDemand(building string) bool {
	return d.zeroDemand[building]
}
