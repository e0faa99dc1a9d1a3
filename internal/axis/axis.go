// Package axis computes linear axis scales and their tick marks.
package axis

import (
	"math"
	"strconv"
)

// Tick is one labelled tick mark.
type Tick struct {
	Value float64 // domain value
	Pos   float64 // position in range units (pixels)
	Label string
}

// Linear maps a domain interval onto a range interval.
type Linear struct {
	Domain [2]float64
	Range  [2]float64
}

// NewLinear returns a scale mapping [d0,d1] onto [r0,r1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{Domain: [2]float64{d0, d1}, Range: [2]float64{r0, r1}}
}

// Map converts a domain value to a range position.
func (s Linear) Map(v float64) float64 {
	d := s.Domain[1] - s.Domain[0]
	if d == 0 {
		return (s.Range[0] + s.Range[1]) / 2
	}
	t := (v - s.Domain[0]) / d
	return s.Range[0] + t*(s.Range[1]-s.Range[0])
}

// Ticks returns roughly count evenly spaced ticks at "nice" values
// (1, 2 or 5 times a power of ten) covering the domain.
func (s Linear) Ticks(count int) []Tick {
	lo, hi := s.Domain[0], s.Domain[1]
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}
	if lo == hi {
		return []Tick{s.tick(lo, 0)}
	}
	if count < 1 {
		count = 1
	}
	reverse := lo > hi
	if reverse {
		lo, hi = hi, lo
	}

	if math.IsInf(hi-lo, 0) {
		return s.endpoints(lo, hi, reverse)
	}

	step, power := tickStep(lo, hi, count)
	// The step is below the resolution of the domain values.
	if lo+step == lo || hi-step == hi {
		return s.endpoints(lo, hi, reverse)
	}
	decimals := 0
	if power < 0 {
		decimals = -power
	}

	// For fractional steps divide by the inverse step so that values such
	// as 0.3 come out exact instead of 3*0.1.
	var value func(i float64) float64
	if step < 1 {
		inv := math.Round(1 / step)
		value = func(i float64) float64 { return i / inv }
	} else {
		value = func(i float64) float64 { return i * step }
	}

	first := math.Ceil(lo/step - 1e-9)
	last := math.Floor(hi/step + 1e-9)
	n := int(last-first) + 1
	if n < 1 || n > 4*count+1 {
		return s.endpoints(lo, hi, reverse)
	}
	ticks := make([]Tick, 0, n)
	for k := 0; k < n; k++ {
		ticks = append(ticks, s.tick(value(first+float64(k)), decimals))
	}
	if reverse {
		for i, j := 0, len(ticks)-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

// tick builds a tick labelled with the given number of decimals, or with
// the shortest exact form when decimals is negative.
func (s Linear) tick(v float64, decimals int) Tick {
	if v == 0 {
		v = 0 // normalize -0
	}
	label := strconv.FormatFloat(v, 'g', -1, 64)
	if decimals >= 0 {
		label = strconv.FormatFloat(v, 'f', decimals, 64)
	}
	return Tick{
		Value: v,
		Pos:   s.Map(v),
		Label: label,
	}
}

// endpoints labels just the domain ends, for domains too wide or too
// narrow to step through.
func (s Linear) endpoints(lo, hi float64, reverse bool) []Tick {
	ticks := []Tick{s.tick(lo, -1), s.tick(hi, -1)}
	if reverse {
		ticks[0], ticks[1] = ticks[1], ticks[0]
	}
	return ticks
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickStep picks a step of 1, 2 or 5 times 10^power that splits [lo,hi]
// into about count intervals.
func tickStep(lo, hi float64, count int) (float64, int) {
	raw := (hi - lo) / float64(count)
	power := int(math.Floor(math.Log10(raw)))
	err := raw / math.Pow(10, float64(power))
	factor := 1.0
	switch {
	case err >= e10:
		factor = 10
	case err >= e5:
		factor = 5
	case err >= e2:
		factor = 2
	}
	if factor == 10 {
		factor = 1
		power++
	}
	return factor * math.Pow(10, float64(power)), power
}

// TickCount returns how many ticks fit along length pixels when ticks should
// be at least spacing pixels apart. It never returns less than 2.
func TickCount(length, spacing float64) int {
	if spacing <= 0 {
		return 2
	}
	n := int(length / spacing)
	if n < 2 {
		return 2
	}
	return n
}
