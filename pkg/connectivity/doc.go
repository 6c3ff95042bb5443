// Package connectivity implements the genome representation and genetic
// operators used to search district-energy network topologies.
//
// A connectivity vector assigns each building of the domain to one of the
// available thermal networks. E.g. for 8 buildings that can share up to 2
// networks:
//
//	values:    [0, 1, 0, 0, 2, 1, 1, 2]
//	buildings: [B1001, B1002, B1003, B1004, B1005, B1006, B1007, B1008]
//
// means B1002, B1006 and B1007 form network 1, B1005 and B1008 form
// network 2, and the remaining buildings stay stand-alone (value 0).
//
// The package owns the canonicalization rules of the genome, its mutation
// and crossover operators (including spatial-cluster-aware variants) and
// the Pareto-front-based selection of the next generation. Spatial
// clustering, fitness evaluation and the generation loop itself are
// external collaborators, consumed through the Clusterer, Evaluator and
// Tracker interfaces.
package connectivity
