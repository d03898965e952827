package opt

// Optimizer is a continuous black-box minimizer over a box-bounded
// parameter space. It is the integration point for external optimization
// libraries used to generate candidate sequences.
type Optimizer interface {
	// Run minimizes eval over the box [lower, upper]^dim and returns the
	// best position found together with its cost.
	Run(eval func([]float64) float64, lower, upper []float64, dim int) ([]float64, float64, error)
}
