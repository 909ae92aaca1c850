package simulation

import "math"

// PathResult is one completed firm trajectory. All sequences have exactly
// HorizonYears entries; the struct is immutable after SimulatePath returns.
type PathResult struct {
	Downgraded    bool      `json:"downgraded"`
	DowngradeYear int       `json:"downgrade_year,omitempty"` // 1-based year of first trigger, 0 if never
	Coverage      []float64 `json:"coverage"`
	Leverage      []float64 `json:"leverage"`
	Revenue       []float64 `json:"revenue"`
	EBITDA        []float64 `json:"ebitda"`
	LeakActive    []bool    `json:"leak_active"`
}

// LeakEver reports whether the leak was active in any year of the path.
func (r PathResult) LeakEver() bool {
	for _, active := range r.LeakActive {
		if active {
			return true
		}
	}
	return false
}

// downgradeDetector tracks the two independent breach streaks and latches
// the first year either streak reaches the required length. The latch is
// terminal: later breaches keep updating the streaks but never move the
// trigger year.
type downgradeDetector struct {
	required       int
	coverageStreak int
	leverageStreak int
	triggered      bool
	triggerYear    int // 1-based
}

func newDowngradeDetector(required int) *downgradeDetector {
	return &downgradeDetector{required: required}
}

// observe feeds one year of breach outcomes into the detector. year is the
// 0-based simulation step.
func (d *downgradeDetector) observe(year int, coverageBreach, leverageBreach bool) {
	if coverageBreach {
		d.coverageStreak++
	} else {
		d.coverageStreak = 0
	}
	if leverageBreach {
		d.leverageStreak++
	} else {
		d.leverageStreak = 0
	}

	if d.triggered {
		return
	}
	if d.coverageStreak >= d.required || d.leverageStreak >= d.required {
		d.triggered = true
		d.triggerYear = year + 1
	}
}

// effectiveSeverity is the realized shock magnitude for one year: zero
// without a leak, the full severity before the detection lag, and the
// mitigated remainder afterwards.
func effectiveSeverity(p Params, severity float64, leak bool, year int) float64 {
	if !leak {
		return 0
	}
	if year < p.DetectionLagYears {
		return severity
	}
	return math.Max(0, severity*(1-p.Mitigation))
}

// SimulatePath evolves one firm trajectory over the full horizon. The leak
// hazard is a single uniform draw at the start; growth and margin shocks
// are drawn fresh each year. A downgrade never stops the simulation: the
// remaining years are evolved to populate the trajectory.
func SimulatePath(p Params, severity float64, src DrawSource) PathResult {
	horizon := p.HorizonYears
	result := PathResult{
		Coverage:   make([]float64, horizon),
		Leverage:   make([]float64, horizon),
		Revenue:    make([]float64, horizon),
		EBITDA:     make([]float64, horizon),
		LeakActive: make([]bool, horizon),
	}

	leak := src.Uniform() < p.LeakProb
	interest := p.InterestExpense()

	revenue := p.InitialRevenue
	margin := p.InitialMargin
	detector := newDowngradeDetector(p.ConsecutiveYears)

	for t := 0; t < horizon; t++ {
		gShock := src.Normal(0, p.GrowthVol)
		mShock := src.Normal(0, p.MarginVol)

		effSev := effectiveSeverity(p, severity, leak, t)
		// The year is marked active whenever the leak occurred, even if
		// mitigation has pushed the effective severity to zero.
		result.LeakActive[t] = leak

		growth := p.BaseGrowth + gShock - growthSeverityShare*effSev
		// Margin compression is amplified by fixed-cost intensity and
		// carries forward: shocks are not mean-reverting.
		margin = math.Max(minMargin, margin+mShock-marginSeverityShare*effSev*(1+p.FixedCostIntensity))

		revenue = math.Max(minRevenue, revenue*(1+growth))
		ebitda := revenue * margin

		coverage := ebitda / math.Max(minDenominator, interest)
		leverage := p.Debt / math.Max(minDenominator, ebitda)

		result.Revenue[t] = revenue
		result.EBITDA[t] = ebitda
		result.Coverage[t] = coverage
		result.Leverage[t] = leverage

		detector.observe(t, coverage < p.CoverageThreshold, leverage > p.LeverageThreshold)
	}

	result.Downgraded = detector.triggered
	result.DowngradeYear = detector.triggerYear
	return result
}
