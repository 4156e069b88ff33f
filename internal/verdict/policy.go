package verdict

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/sustainsim/internal/domain"
)

// Band maps every score strictly above Above to its verdict
type Band struct {
	Above          float64 `yaml:"above" json:"above"`
	domain.Verdict `yaml:",inline"`
}

// Policy is an ordered band table. Bands are evaluated from the highest
// bound downward; a score that clears no band gets Floor. Every real value,
// NaN included, therefore lands in exactly one verdict.
type Policy struct {
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Bands       []Band         `yaml:"bands" json:"bands"`
	Floor       domain.Verdict `yaml:"floor" json:"floor"`
}

// Classify returns the verdict for score under p
func Classify(score float64, p Policy) domain.Verdict {
	return p.Classify(score)
}

// Classify returns the verdict for score
func (p Policy) Classify(score float64) domain.Verdict {
	if i := p.BandIndex(score); i >= 0 {
		return p.Bands[i].Verdict
	}
	return p.Floor
}

// BandIndex returns the index of the band that score falls in, or -1 for the floor
func (p Policy) BandIndex(score float64) int {
	for i, band := range p.Bands {
		if score > band.Above {
			return i
		}
	}
	return -1
}

// Labels returns every label of the policy, highest band first
func (p Policy) Labels() []string {
	labels := make([]string, 0, len(p.Bands)+1)
	for _, band := range p.Bands {
		labels = append(labels, band.Label)
	}
	return append(labels, p.Floor.Label)
}

// Range describes the half-open interval of band i (or the floor for i == len(Bands))
func (p Policy) Range(i int) (lower, upper float64) {
	upper = math.Inf(1)
	if i > 0 && i <= len(p.Bands) {
		upper = p.Bands[i-1].Above
	}
	lower = math.Inf(-1)
	if i < len(p.Bands) {
		lower = p.Bands[i].Above
	}
	return lower, upper
}

// RangeLabel describes band i (or the floor) as an inequality on the score
func (p Policy) RangeLabel(i int) string {
	return RangeText(p.Range(i))
}

// RangeText describes the interval (lower, upper] in words
func RangeText(lower, upper float64) string {
	switch {
	case math.IsInf(upper, 1) && math.IsInf(lower, -1):
		return "any score"
	case math.IsInf(upper, 1):
		return "score > " + fixed(lower)
	case math.IsInf(lower, -1):
		return "score ≤ " + fixed(upper)
	default:
		return fmt.Sprintf("%s < score ≤ %s", fixed(lower), fixed(upper))
	}
}

func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Validate checks that the table is usable: a name, labelled bands with
// finite bounds in strictly descending order, and a labelled floor.
func (p Policy) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("policy name is required")
	}
	if p.Floor.Label == "" {
		return fmt.Errorf("policy %s: floor label is required", p.Name)
	}
	for i, band := range p.Bands {
		if band.Label == "" {
			return fmt.Errorf("policy %s: band %d label is required", p.Name, i)
		}
		if math.IsNaN(band.Above) || math.IsInf(band.Above, 0) {
			return fmt.Errorf("policy %s: band %d bound must be finite", p.Name, i)
		}
		if i > 0 && band.Above >= p.Bands[i-1].Above {
			return fmt.Errorf("policy %s: band %d bound %g must be below %g", p.Name, i, band.Above, p.Bands[i-1].Above)
		}
	}
	return nil
}
