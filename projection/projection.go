// Package projection implements the investing calculator's client-side
// math: a compound-interest simulation with periodic contributions, plus
// the emergency-fund target helper.
package projection

import (
	"errors"
	"math"
)

var (
	ErrInvalidHorizon = errors.New("projection horizon must be at least one year")
	ErrNegativeRate   = errors.New("annual rate cannot be negative")
)

// CompoundInput describes one projection run. CompoundsPerYear defaults to
// monthly compounding when zero.
type CompoundInput struct {
	Principal           float64
	MonthlyContribution float64
	AnnualRatePercent   float64
	Years               int
	CompoundsPerYear    int
}

// YearRow is one year of the projection. Contributed and Interest are
// cumulative; Total is their sum.
type YearRow struct {
	Year        int     `json:"year"`
	Contributed float64 `json:"contributed"`
	Interest    float64 `json:"interest"`
	Total       float64 `json:"total"`
}

// CompoundInterest simulates the balance period by period: each compounding
// period receives its share of the yearly contributions and then grows by
// the periodic rate. Rows are rounded to cents; the running balance is not,
// so rounding error does not accumulate.
func CompoundInterest(in CompoundInput) ([]YearRow, error) {
	if in.Years <= 0 {
		return nil, ErrInvalidHorizon
	}
	if in.AnnualRatePercent < 0 {
		return nil, ErrNegativeRate
	}

	periodsPerYear := in.CompoundsPerYear
	if periodsPerYear <= 0 {
		periodsPerYear = 12
	}
	periodicRate := in.AnnualRatePercent / 100 / float64(periodsPerYear)
	contributionPerPeriod := in.MonthlyContribution * 12 / float64(periodsPerYear)

	total := in.Principal
	contributed := in.Principal

	rows := make([]YearRow, 0, in.Years)
	for year := 1; year <= in.Years; year++ {
		for period := 0; period < periodsPerYear; period++ {
			total += contributionPerPeriod
			contributed += contributionPerPeriod
			total *= 1 + periodicRate
		}
		rows = append(rows, YearRow{
			Year:        year,
			Contributed: roundCents(contributed),
			Interest:    roundCents(total - contributed),
			Total:       roundCents(total),
		})
	}
	return rows, nil
}

// EmergencyFundTarget returns the savings needed to cover the given number
// of months of core expenses.
func EmergencyFundTarget(coreMonthlyExpenses float64, months int) float64 {
	if coreMonthlyExpenses <= 0 || months <= 0 {
		return 0
	}
	return roundCents(coreMonthlyExpenses * float64(months))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
