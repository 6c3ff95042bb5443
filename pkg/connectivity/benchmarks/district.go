// Package benchmarks provides synthetic district configurations used to
// validate the genetic operators end to end, in the way synthetic
// objective functions validate multi-objective algorithms.
package benchmarks

import (
	"fmt"

	"github.com/Mar-Ges/CityEnergyAnalyst/pkg/connectivity"
	"github.com/Mar-Ges/CityEnergyAnalyst/pkg/multiobjective/framework"
)

const (
	Name = "SyntheticDistrict"
)

// Cost coefficients of the toy model. Shared networks trade investment
// cost against cheaper heat supply; the two supply variants trade
// investment against operation.
const (
	networkBaseCost   = 500.0
	connectionCost    = 80.0
	standAloneCost    = 150.0
	standAloneRate    = 1.0
	sharedRate        = 0.65
	heatPumpCapexMult = 1.6
	heatPumpOpexMult  = 0.55
)

// SyntheticDistrict is a toy district energy cost model implementing the
// connectivity.Evaluator interface. It is not a physical model; the cost
// surfaces are shaped only to give the optimizer a non-trivial trade-off
// between network investment and supply cost. Each topology yields two
// supply-system combinations, a fuel-based one (cheap to build, expensive
// to run) and a heat-pump-based one (the other way round).
type SyntheticDistrict struct {
	domain  *connectivity.Domain
	demands []float64
}

// NewSyntheticDistrict builds the benchmark for a domain with one peak
// demand value (kW) per building, in genome order.
func NewSyntheticDistrict(domain *connectivity.Domain, demands []float64) (*SyntheticDistrict, error) {
	if len(demands) != domain.NumBuildings() {
		return nil, fmt.Errorf("expected %d demand values, got %d", domain.NumBuildings(), len(demands))
	}
	return &SyntheticDistrict{
		domain:  domain,
		demands: demands,
	}, nil
}

func (p *SyntheticDistrict) Name() string {
	return Name
}

// Evaluate implements connectivity.Evaluator.
func (p *SyntheticDistrict) Evaluate(v *connectivity.Vector) ([]connectivity.SystemSolution, error) {
	if v.Len() != len(p.demands) {
		return nil, fmt.Errorf("genome length %d does not match district of %d buildings", v.Len(), len(p.demands))
	}

	var capex, opex float64
	networkDemand := make(map[int]float64)
	networkSize := make(map[int]int)

	for i, id := range v.Values() {
		if id == 0 {
			capex += standAloneCost
			opex += p.demands[i] * standAloneRate
			continue
		}
		networkDemand[id] += p.demands[i]
		networkSize[id]++
	}

	for id, demand := range networkDemand {
		capex += networkBaseCost + connectionCost*float64(networkSize[id])
		opex += demand * sharedRate
	}

	key := v.Encode()
	return []connectivity.SystemSolution{
		{
			GenomeKey: key,
			Fitness:   framework.ObjectiveSpacePoint{capex, opex},
		},
		{
			GenomeKey: key,
			Fitness:   framework.ObjectiveSpacePoint{capex * heatPumpCapexMult, opex * heatPumpOpexMult},
		},
	}, nil
}

var _ connectivity.Evaluator = (*SyntheticDistrict)(nil)
