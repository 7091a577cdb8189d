package html

import "github.com/cockroachdb/apd/v3"

// step arithmetic runs on decimals so that 0.1 steps stay exact
var decimalContext = apd.BaseContext.WithPrecision(34)

func newDecimal(f float64) *apd.Decimal {
	d := new(apd.Decimal)
	if _, err := d.SetFloat64(f); err != nil {
		d.SetInt64(0)
	}
	return d
}

func decimalFloat(d *apd.Decimal) float64 {
	f, err := d.Float64()
	if err != nil {
		return 0
	}
	return f
}

// stepAligned reports whether value-base is an integral multiple of step.
func stepAligned(value, base, step float64) bool {
	diff := new(apd.Decimal)
	if _, err := decimalContext.Sub(diff, newDecimal(value), newDecimal(base)); err != nil {
		return true
	}
	rem := new(apd.Decimal)
	if _, err := decimalContext.Rem(rem, diff, newDecimal(step)); err != nil {
		return true
	}
	return rem.IsZero()
}

// addSteps returns value + n*step.
func addSteps(value, step float64, n int) float64 {
	d := new(apd.Decimal)
	if _, err := decimalContext.Mul(d, newDecimal(step), apd.New(int64(n), 0)); err != nil {
		return value
	}
	if _, err := decimalContext.Add(d, d, newDecimal(value)); err != nil {
		return value
	}
	return decimalFloat(d)
}

// alignStep returns the closest base+k*step at or above value when up is
// set, at or below value otherwise.
func alignStep(value, base, step float64, up bool) float64 {
	q := new(apd.Decimal)
	if _, err := decimalContext.Sub(q, newDecimal(value), newDecimal(base)); err != nil {
		return value
	}
	if _, err := decimalContext.Quo(q, q, newDecimal(step)); err != nil {
		return value
	}
	var err error
	if up {
		_, err = decimalContext.Ceil(q, q)
	} else {
		_, err = decimalContext.Floor(q, q)
	}
	if err != nil {
		return value
	}
	if _, err := decimalContext.Mul(q, q, newDecimal(step)); err != nil {
		return value
	}
	if _, err := decimalContext.Add(q, q, newDecimal(base)); err != nil {
		return value
	}
	return decimalFloat(q)
}
