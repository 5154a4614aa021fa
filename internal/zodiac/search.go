package zodiac

import (
	"fmt"
	"math"

	"github.com/litescript/ls-orbitor/internal/errors"
	"github.com/litescript/ls-orbitor/internal/orbit"
)

// Search defaults.
const (
	DefaultStepsPerPeriod = 360
	DefaultHorizonPeriods = 3
	DefaultPrecision      = 1.0 / 1440 // one minute, in days

	// maxScanSteps bounds Ingresses over very long windows.
	maxScanSteps = 2_000_000
)

// Options tunes the coarse scan and the refinement.
type Options struct {
	StepsPerPeriod int     // coarse steps per apparent period
	HorizonPeriods float64 // give up after this many apparent periods
	Refine         bool    // bisect inside the bracketing step
	Precision      float64 // bisection stops below this bracket width, days
}

// DefaultOptions returns the default search settings.
func DefaultOptions() Options {
	return Options{
		StepsPerPeriod: DefaultStepsPerPeriod,
		HorizonPeriods: DefaultHorizonPeriods,
		Refine:         true,
		Precision:      DefaultPrecision,
	}
}

// Ingress is the moment a body crosses from one sign into the next.
type Ingress struct {
	Body orbit.Body
	Days float64
	From Sign
	To   Sign
}

// Searcher finds sign ingresses by stepping an Engine forward in time.
type Searcher struct {
	eng  *orbit.Engine
	opts Options
}

// NewSearcher returns a Searcher. Zero numeric fields in opts take their
// defaults; Refine is used as given.
func NewSearcher(eng *orbit.Engine, opts Options) *Searcher {
	if opts.StepsPerPeriod <= 0 {
		opts.StepsPerPeriod = DefaultStepsPerPeriod
	}
	if opts.HorizonPeriods <= 0 {
		opts.HorizonPeriods = DefaultHorizonPeriods
	}
	if opts.Precision <= 0 {
		opts.Precision = DefaultPrecision
	}
	return &Searcher{eng: eng, opts: opts}
}

// Options returns the searcher's settings.
func (s *Searcher) Options() Options {
	return s.opts
}

// ApparentPeriod returns the time in days over which body's geocentric
// longitude cycles through all signs. Inner planets are tied to Earth's
// year as well as their own orbit, so planets use the longer of the two.
func ApparentPeriod(body orbit.Body) float64 {
	year := orbit.Earth.Period()
	switch body {
	case orbit.Moon:
		return orbit.Moon.Period()
	case orbit.Sun, orbit.Earth:
		return year
	default:
		return math.Max(body.Period(), year)
	}
}

// Step returns the coarse scan step for body in days.
func (s *Searcher) Step(body orbit.Body) float64 {
	return ApparentPeriod(body) / float64(s.opts.StepsPerPeriod)
}

// NextOccurrence returns the first time after start at which body enters
// target. A body already inside target at start has to leave and come back.
// With refinement on, the result is within Precision of the true ingress and
// always reports target; otherwise it is the first coarse step inside target.
func (s *Searcher) NextOccurrence(body orbit.Body, target Sign, start float64) (float64, error) {
	if err := s.validate(body); err != nil {
		return 0, err
	}
	if !target.Valid() {
		return 0, errors.NewUnknownSign(target.String())
	}

	period := ApparentPeriod(body)
	step := period / float64(s.opts.StepsPerPeriod)
	steps := int(math.Ceil(s.opts.HorizonPeriods * float64(s.opts.StepsPerPeriod)))

	prev, err := s.signAt(body, start)
	if err != nil {
		return 0, err
	}
	for i := 1; i <= steps; i++ {
		t := start + float64(i)*step
		cur, err := s.signAt(body, t)
		if err != nil {
			return 0, err
		}
		if prev != target && cur == target {
			lo := start + float64(i-1)*step
			if !s.opts.Refine {
				return t, nil
			}
			return s.bisect(body, lo, t, func(sg Sign) bool { return sg == target })
		}
		prev = cur
	}

	return 0, errors.NewSearchExhausted(body.String(), target.String(), start, s.opts.HorizonPeriods*period)
}

// Ingresses lists every sign change of body in (start, end], in time order.
func (s *Searcher) Ingresses(body orbit.Body, start, end float64) ([]Ingress, error) {
	if err := s.validate(body); err != nil {
		return nil, err
	}
	if !(end > start) {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("ingress window end %.3f is not after start %.3f", end, start))
	}

	step := s.Step(body)
	if (end-start)/step > maxScanSteps {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("ingress window of %.0f days is too long for %s", end-start, body))
	}

	prev, err := s.signAt(body, start)
	if err != nil {
		return nil, err
	}

	var out []Ingress
	lo := start
	for i := 1; lo < end; i++ {
		hi := math.Min(start+float64(i)*step, end)
		cur, err := s.signAt(body, hi)
		if err != nil {
			return nil, err
		}
		if cur != prev {
			from := prev
			at := hi
			if s.opts.Refine {
				at, err = s.bisect(body, lo, hi, func(sg Sign) bool { return sg != from })
				if err != nil {
					return nil, err
				}
			}
			to, err := s.signAt(body, at)
			if err != nil {
				return nil, err
			}
			out = append(out, Ingress{Body: body, Days: at, From: from, To: to})
		}
		prev = cur
		lo = hi
	}
	return out, nil
}

// bisect narrows [lo, hi] until it is narrower than Precision. done must be
// false at lo and true at hi; the returned time always satisfies done.
func (s *Searcher) bisect(body orbit.Body, lo, hi float64, done func(Sign) bool) (float64, error) {
	for hi-lo > s.opts.Precision {
		mid := lo + (hi-lo)/2
		sg, err := s.signAt(body, mid)
		if err != nil {
			return 0, err
		}
		if done(sg) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi, nil
}

func (s *Searcher) signAt(body orbit.Body, days float64) (Sign, error) {
	pos, err := s.eng.Geocentric(body, days)
	if err != nil {
		return 0, err
	}
	return SignOf(pos), nil
}

func (s *Searcher) validate(body orbit.Body) error {
	if !body.Valid() {
		return errors.NewUnknownBody(body.String())
	}
	if body == orbit.Earth {
		return errors.NewNoGeocentricDirection(body.String())
	}
	return nil
}
