package pdipm

import "errors"

// ErrInvalidDimension is returned when n <= 0.
var ErrInvalidDimension = errors.New("pdipm: n must be greater than zero")

// ErrInfeasibleStart is returned when the caller's InitialPoint does not
// satisfy fi(x0) < 0 for every inequality constraint.
var ErrInfeasibleStart = errors.New("pdipm: initial point is not strictly inequality-feasible")

// ErrNumericalDegeneracy is returned when the surrogate duality gap eta
// goes negative, which can only happen from a loss of numerical
// precision in a degenerate iterate.
var ErrNumericalDegeneracy = errors.New("pdipm: surrogate duality gap went negative")

// Callback errors (anything returned by a problem.Problem method) are
// never wrapped in a sentinel: Start returns them exactly as received.
