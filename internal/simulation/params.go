package simulation

import (
	"errors"
	"fmt"
)

// ErrInvalidParams marks model configuration that fails fast-fail validation.
var ErrInvalidParams = errors.New("invalid model parameters")

// Numerical floors. Degenerate divisions and non-positive economics are
// recovered locally instead of being surfaced as errors.
const (
	minRevenue     = 1.0
	minMargin      = 0.01
	minDenominator = 1e-6
)

// Share of the effective severity that degrades growth vs. margin.
const (
	growthSeverityShare = 0.6
	marginSeverityShare = 0.4
)

// Params holds the immutable firm and trigger configuration for one model run.
// Severity is deliberately not part of Params: it is the swept variable and
// is passed per invocation.
type Params struct {
	HorizonYears       int     `json:"horizon_years"`
	InitialRevenue     float64 `json:"initial_revenue"`
	BaseGrowth         float64 `json:"base_growth"`
	GrowthVol          float64 `json:"growth_vol"`
	InitialMargin      float64 `json:"initial_margin"`
	MarginVol          float64 `json:"margin_vol"`
	Debt               float64 `json:"debt"`
	InterestRate       float64 `json:"interest_rate"`
	FixedCostIntensity float64 `json:"fixed_cost_intensity"`
	LeakProb           float64 `json:"leak_probability"`
	DetectionLagYears  int     `json:"detection_lag_years"`
	Mitigation         float64 `json:"mitigation"`
	CoverageThreshold  float64 `json:"coverage_threshold"`
	LeverageThreshold  float64 `json:"leverage_threshold"`
	ConsecutiveYears   int     `json:"consecutive_years_below"`
	DowngradeWindow    int     `json:"downgrade_window"`
}

// DefaultParams returns the stylized base-case calibration.
func DefaultParams() Params {
	return Params{
		HorizonYears:       5,
		InitialRevenue:     1000.0,
		BaseGrowth:         0.05,
		GrowthVol:          0.06,
		InitialMargin:      0.18,
		MarginVol:          0.02,
		Debt:               600.0,
		InterestRate:       0.05,
		FixedCostIntensity: 0.6,
		LeakProb:           0.15,
		DetectionLagYears:  2,
		Mitigation:         0.5,
		CoverageThreshold:  2.5,
		LeverageThreshold:  4.0,
		ConsecutiveYears:   2,
		DowngradeWindow:    3,
	}
}

// InterestExpense is the constant annual interest bill implied by the
// capital structure.
func (p Params) InterestExpense() float64 {
	return p.Debt * p.InterestRate
}

// Validate checks the structural constraints of the model. The simulation
// itself assumes validated parameters; callers must fail fast on an error
// here rather than start a run.
func (p Params) Validate() error {
	if p.HorizonYears <= 0 {
		return fmt.Errorf("%w: horizon_years must be positive, got %d", ErrInvalidParams, p.HorizonYears)
	}
	if p.GrowthVol < 0 {
		return fmt.Errorf("%w: growth_vol must be >= 0, got %g", ErrInvalidParams, p.GrowthVol)
	}
	if p.MarginVol < 0 {
		return fmt.Errorf("%w: margin_vol must be >= 0, got %g", ErrInvalidParams, p.MarginVol)
	}
	if p.InitialRevenue <= 0 {
		return fmt.Errorf("%w: initial_revenue must be positive, got %g", ErrInvalidParams, p.InitialRevenue)
	}
	if p.InitialMargin <= 0 {
		return fmt.Errorf("%w: initial_margin must be positive, got %g", ErrInvalidParams, p.InitialMargin)
	}
	if p.Debt <= 0 && p.InterestRate != 0 {
		return fmt.Errorf("%w: debt must be positive when an interest rate is set", ErrInvalidParams)
	}
	for name, v := range map[string]float64{
		"fixed_cost_intensity": p.FixedCostIntensity,
		"leak_probability":     p.LeakProb,
		"mitigation":           p.Mitigation,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s must be in [0,1], got %g", ErrInvalidParams, name, v)
		}
	}
	if p.DetectionLagYears < 0 {
		return fmt.Errorf("%w: detection_lag_years must be >= 0, got %d", ErrInvalidParams, p.DetectionLagYears)
	}
	if p.CoverageThreshold <= 0 {
		return fmt.Errorf("%w: coverage_threshold must be positive, got %g", ErrInvalidParams, p.CoverageThreshold)
	}
	if p.LeverageThreshold <= 0 {
		return fmt.Errorf("%w: leverage_threshold must be positive, got %g", ErrInvalidParams, p.LeverageThreshold)
	}
	if p.ConsecutiveYears <= 0 {
		return fmt.Errorf("%w: consecutive_years_below must be positive, got %d", ErrInvalidParams, p.ConsecutiveYears)
	}
	if p.DowngradeWindow <= 0 {
		return fmt.Errorf("%w: downgrade_window must be positive, got %d", ErrInvalidParams, p.DowngradeWindow)
	}
	if p.DowngradeWindow > p.HorizonYears {
		return fmt.Errorf("%w: downgrade_window %d exceeds horizon of %d years", ErrInvalidParams, p.DowngradeWindow, p.HorizonYears)
	}
	return nil
}

// ValidateSeverity checks a per-run severity value against the model bounds.
func ValidateSeverity(severity float64) error {
	if severity < 0 || severity > 1 {
		return fmt.Errorf("%w: severity must be in [0,1], got %g", ErrInvalidParams, severity)
	}
	return nil
}
