package engine

import (
	"math"

	"fxba/domain"
)

// frenchCoefficient is the DBF multiplier for a given life.
func frenchCoefficient(life float64) float64 {
	switch {
	case life <= 4:
		return 1.25
	case life <= 6:
		return 1.75
	default:
		return 2.25
	}
}

// PartialYearFactor is the share of a year depreciated under the French
// methods: the months left in the acquisition year, a trailing partial
// year when the asset was not bought in January, and 1 otherwise.
func PartialYearFactor(startMonth, year int, life float64) float64 {
	if year == 1 {
		return float64(12-startMonth+1) / 12
	}
	if startMonth > 1 && year == int(math.Ceil(life))+1 {
		usedFirst := 12 - startMonth + 1
		return float64(12-usedFirst) / 12
	}
	return 1
}

// lastYear is the final year with any depreciation.
func lastYear(life float64, startMonth int, french bool) int {
	last := int(math.Ceil(life))
	if french && startMonth > 1 {
		last++
	}
	return last
}

func clampToSalvage(dep, book, salvage float64) float64 {
	if book-dep < salvage {
		dep = book - salvage
	}
	if dep < 0 {
		dep = 0
	}
	return dep
}

// yearlyDepreciation returns the charge for each year 1..years in one walk.
// Index 0 is year 1. The declining methods carry the prior year's book
// value forward instead of replaying earlier years.
func yearlyDepreciation(in domain.DepreciationInput, method domain.DepreciationMethod, years int) []float64 {
	deps := make([]float64, years)
	base := in.Cost - in.Salvage
	sl := base / in.Life
	book := in.Cost

	for y := 1; y <= years; y++ {
		var dep float64
		switch method {
		case domain.MethodSL:
			if y <= lastYear(in.Life, in.StartMonth, false) {
				dep = sl
			}
		case domain.MethodSYD:
			if y <= int(in.Life) {
				dep = base * (in.Life - float64(y) + 1) / (in.Life * (in.Life + 1) / 2)
			}
		case domain.MethodDB:
			rate := in.DBRate / 100 / in.Life
			dep = clampToSalvage(book*rate, book, in.Salvage)
		case domain.MethodDBSL:
			rate := in.DBRate / 100 / in.Life
			db := book * rate
			straight := (book - in.Salvage) / (in.Life - float64(y) + 1)
			if straight > db {
				dep = clampToSalvage(straight, book, in.Salvage)
			} else {
				dep = clampToSalvage(db, book, in.Salvage)
			}
		case domain.MethodSLF:
			if y <= lastYear(in.Life, in.StartMonth, true) {
				dep = sl * PartialYearFactor(in.StartMonth, y, in.Life)
			}
		case domain.MethodDBF:
			factor := PartialYearFactor(in.StartMonth, y, in.Life)
			rate := frenchCoefficient(in.Life) / in.Life
			db := book * rate * factor
			straight := (book - in.Salvage) / (in.Life - float64(y) + 1) * factor
			if straight > db {
				dep = clampToSalvage(straight, book, in.Salvage)
			} else {
				dep = clampToSalvage(db, book, in.Salvage)
			}
		}
		deps[y-1] = dep
		book -= dep
	}
	return deps
}

func normalizeDepreciation(in domain.DepreciationInput, method domain.DepreciationMethod) (domain.DepreciationInput, error) {
	if in.Life <= 0 {
		return in, domain.ErrInvalidInput
	}
	if method < domain.MethodSL || method > domain.MethodDBF {
		return in, domain.ErrInvalidInput
	}
	if (method == domain.MethodDB || method == domain.MethodDBSL) && in.DBRate <= 0 {
		return in, domain.ErrInvalidInput
	}
	if in.StartMonth < 1 {
		in.StartMonth = 1
	}
	if in.StartMonth > 12 {
		in.StartMonth = 12
	}
	return in, nil
}

// DepreciationSchedule returns the results for years 1..years.
func DepreciationSchedule(in domain.DepreciationInput, method domain.DepreciationMethod, years int) ([]domain.DepreciationResult, error) {
	in, err := normalizeDepreciation(in, method)
	if err != nil {
		return nil, err
	}
	if years < 1 {
		return nil, domain.ErrInvalidInput
	}

	deps := yearlyDepreciation(in, method, years)
	out := make([]domain.DepreciationResult, 0, years)
	book, accum := in.Cost, 0.0
	for i, dep := range deps {
		accum += dep
		end := math.Max(in.Cost-accum, in.Salvage)
		out = append(out, domain.DepreciationResult{
			Year:           i + 1,
			Depreciation:   dep,
			BookValueStart: book,
			AccumDepr:      accum,
			BookValueEnd:   end,
			RemainingDepr:  math.Max(end-in.Salvage, 0),
		})
		book -= dep
	}
	return out, nil
}

// Depreciate returns the result for a single year. It is a pure function
// of its arguments; no running total survives between calls.
func Depreciate(in domain.DepreciationInput, method domain.DepreciationMethod, year int) (domain.DepreciationResult, error) {
	schedule, err := DepreciationSchedule(in, method, year)
	if err != nil {
		return domain.DepreciationResult{}, err
	}
	return schedule[year-1], nil
}
