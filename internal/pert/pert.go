// Package pert implements three-point (PERT) duration estimation.
package pert

import (
	"fmt"
	"math"
)

// Interval is a symmetric confidence range around the expected value.
type Interval struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Estimate is the derived output of a three-point estimation. All values
// share the unit of the inputs (typically working days).
type Estimate struct {
	Optimistic   float64  `json:"optimistic"`
	MostLikely   float64  `json:"most_likely"`
	Pessimistic  float64  `json:"pessimistic"`
	Expected     float64  `json:"expected"`
	Variance     float64  `json:"variance"`
	StdDev       float64  `json:"std_dev"`
	Confidence68 Interval `json:"confidence_68"` // expected ± 1σ
	Confidence95 Interval `json:"confidence_95"` // expected ± 2σ
}

// InvalidPERTInputError reports an unusable three-point triple.
type InvalidPERTInputError struct {
	Optimistic  float64
	MostLikely  float64
	Pessimistic float64
	Reason      string
}

func (e *InvalidPERTInputError) Error() string {
	return fmt.Sprintf("invalid PERT input (o=%g, m=%g, p=%g): %s",
		e.Optimistic, e.MostLikely, e.Pessimistic, e.Reason)
}

// New computes a PERT estimate from an optimistic/mostLikely/pessimistic
// triple. All three values must be positive and ordered
// optimistic <= mostLikely <= pessimistic.
func New(optimistic, mostLikely, pessimistic float64) (*Estimate, error) {
	fail := func(reason string) (*Estimate, error) {
		return nil, &InvalidPERTInputError{
			Optimistic:  optimistic,
			MostLikely:  mostLikely,
			Pessimistic: pessimistic,
			Reason:      reason,
		}
	}

	if optimistic <= 0 || mostLikely <= 0 || pessimistic <= 0 {
		return fail("all values must be positive")
	}
	if optimistic > mostLikely || mostLikely > pessimistic {
		return fail("values must be ordered optimistic <= most likely <= pessimistic")
	}

	expected := (optimistic + 4*mostLikely + pessimistic) / 6
	variance := math.Pow((pessimistic-optimistic)/6, 2)
	stdDev := math.Sqrt(variance)

	return &Estimate{
		Optimistic:   optimistic,
		MostLikely:   mostLikely,
		Pessimistic:  pessimistic,
		Expected:     expected,
		Variance:     variance,
		StdDev:       stdDev,
		Confidence68: Interval{Min: expected - stdDev, Max: expected + stdDev},
		Confidence95: Interval{Min: expected - 2*stdDev, Max: expected + 2*stdDev},
	}, nil
}
