package engine

import (
	"math"

	"fxba/domain"
)

// variances returns the population and sample variance from raw sums,
// clamped at zero against rounding.
func variances(n int, sum, sumSq float64) (pop, sample float64) {
	fn := float64(n)
	mean := sum / fn
	pop = math.Max(sumSq/fn-mean*mean, 0)
	if n > 1 {
		sample = math.Max((sumSq-fn*mean*mean)/(fn-1), 0)
	}
	return pop, sample
}

// OneVar summarizes the x value of every entry.
func OneVar(s domain.StatData) domain.OneVarStats {
	var r domain.OneVarStats
	if len(s.Points) == 0 {
		return r
	}
	r.N = len(s.Points)
	r.MinX, r.MaxX = s.Points[0].X, s.Points[0].X
	for _, p := range s.Points {
		r.SumX += p.X
		r.SumX2 += p.X * p.X
		r.MinX = math.Min(r.MinX, p.X)
		r.MaxX = math.Max(r.MaxX, p.X)
	}
	r.MeanX = r.SumX / float64(r.N)
	pop, sample := variances(r.N, r.SumX, r.SumX2)
	r.SigmaX, r.Sx = math.Sqrt(pop), math.Sqrt(sample)
	return r
}

func pairs(s domain.StatData) (xs, ys []float64) {
	for _, p := range s.Points {
		if p.HasY {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	}
	return xs, ys
}

// TwoVar summarizes the paired entries; 1-variable entries are skipped.
func TwoVar(s domain.StatData) domain.TwoVarStats {
	var r domain.TwoVarStats
	xs, ys := pairs(s)
	if len(xs) == 0 {
		return r
	}
	r.N = len(xs)
	for i := range xs {
		x, y := xs[i], ys[i]
		r.SumX += x
		r.SumY += y
		r.SumX2 += x * x
		r.SumY2 += y * y
		r.SumXY += x * y
	}
	r.MeanX = r.SumX / float64(r.N)
	r.MeanY = r.SumY / float64(r.N)
	popX, sampleX := variances(r.N, r.SumX, r.SumX2)
	popY, sampleY := variances(r.N, r.SumY, r.SumY2)
	r.SigmaX, r.Sx = math.Sqrt(popX), math.Sqrt(sampleX)
	r.SigmaY, r.Sy = math.Sqrt(popY), math.Sqrt(sampleY)
	return r
}

// leastSquares fits y = a + b·x and reports the correlation.
func leastSquares(xs, ys []float64) (a, b, r float64) {
	n := float64(len(xs))
	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumX2 += xs[i] * xs[i]
		sumY2 += ys[i] * ys[i]
	}
	meanX, meanY := sumX/n, sumY/n
	sxy := sumXY - n*meanX*meanY
	sxx := sumX2 - n*meanX*meanX
	syy := sumY2 - n*meanY*meanY

	if sxx != 0 {
		b = sxy / sxx
	}
	a = meanY - b*meanX
	if sxx > 0 && syy > 0 {
		r = sxy / math.Sqrt(sxx*syy)
	}
	return a, b, r
}

// Regress fits the paired entries to one of the four families. Entries
// outside a log transform's domain are dropped first.
func Regress(s domain.StatData, typ domain.RegressionType) (domain.Regression, error) {
	res := domain.Regression{Type: typ}
	xs, ys := pairs(s)

	var tx, ty []float64
	for i := range xs {
		x, y := xs[i], ys[i]
		switch typ {
		case domain.RegLinear:
			tx, ty = append(tx, x), append(ty, y)
		case domain.RegLog:
			if x > 0 {
				tx, ty = append(tx, math.Log(x)), append(ty, y)
			}
		case domain.RegExp:
			if y > 0 {
				tx, ty = append(tx, x), append(ty, math.Log(y))
			}
		case domain.RegPower:
			if x > 0 && y > 0 {
				tx, ty = append(tx, math.Log(x)), append(ty, math.Log(y))
			}
		default:
			return res, domain.ErrInvalidInput
		}
	}
	if len(tx) < 2 {
		return res, domain.ErrInvalidInput
	}

	res.A, res.B, res.R = leastSquares(tx, ty)
	if typ == domain.RegExp || typ == domain.RegPower {
		res.A = math.Exp(res.A)
	}
	res.RSq = res.R * res.R
	return res, nil
}

// PredictY evaluates the fitted curve. Points outside its domain give 0.
func PredictY(reg domain.Regression, x float64) float64 {
	switch reg.Type {
	case domain.RegLinear:
		return reg.A + reg.B*x
	case domain.RegLog:
		if x > 0 {
			return reg.A + reg.B*math.Log(x)
		}
	case domain.RegExp:
		return reg.A * math.Exp(reg.B*x)
	case domain.RegPower:
		if x > 0 {
			return reg.A * math.Pow(x, reg.B)
		}
	}
	return 0
}

// PredictX inverts the fitted curve. Points outside its domain give 0.
func PredictX(reg domain.Regression, y float64) float64 {
	if reg.B == 0 {
		return 0
	}
	switch reg.Type {
	case domain.RegLinear:
		return (y - reg.A) / reg.B
	case domain.RegLog:
		return math.Exp((y - reg.A) / reg.B)
	case domain.RegExp:
		if reg.A != 0 && y/reg.A > 0 {
			return math.Log(y/reg.A) / reg.B
		}
	case domain.RegPower:
		if reg.A != 0 && y/reg.A > 0 {
			return math.Pow(y/reg.A, 1/reg.B)
		}
	}
	return 0
}
