package framework

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
// All objectives follow the minimization convention.
type ObjectiveSpacePoint []float64

// Solution is one evaluated candidate in a multi-objective problem. The
// concrete type is owned by the problem; the sorting routines only need the
// position in objective space.
type Solution interface {
	Objectives() ObjectiveSpacePoint
}

// ObjectiveFunc defines the interface for objective functions
type ObjectiveFunc func(Solution) float64

// Constraint returns true if the constraint is satisfied and false otherwise.
type Constraint func(Solution) bool
