package domain

import "fmt"

// AggregationMode selects how the four maturity components reduce to the scalar T
type AggregationMode string

const (
	AggregationFixed    AggregationMode = "fixed"    // T taken verbatim from InitialMaturity
	AggregationWeighted AggregationMode = "weighted" // weighted average of components
	AggregationMean     AggregationMode = "mean"     // unweighted arithmetic mean
	AggregationMinimum  AggregationMode = "minimum"  // weakest component dominates
)

// AggregationModes lists every supported mode in display order
func AggregationModes() []AggregationMode {
	return []AggregationMode{AggregationFixed, AggregationWeighted, AggregationMean, AggregationMinimum}
}

// IsValid reports whether the mode is one of the closed set
func (m AggregationMode) IsValid() bool {
	switch m {
	case AggregationFixed, AggregationWeighted, AggregationMean, AggregationMinimum:
		return true
	}
	return false
}

// UsesComponents reports whether T is derived from the maturity components
func (m AggregationMode) UsesComponents() bool {
	return m.IsValid() && m != AggregationFixed
}

// Next cycles to the following mode, wrapping around
func (m AggregationMode) Next() AggregationMode {
	modes := AggregationModes()
	for i, mode := range modes {
		if mode == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}

func (m AggregationMode) String() string {
	switch m {
	case AggregationFixed:
		return "Fixed scalar"
	case AggregationWeighted:
		return "Weighted average"
	case AggregationMean:
		return "Unweighted mean"
	case AggregationMinimum:
		return "Minimum component"
	default:
		return fmt.Sprintf("unknown(%s)", string(m))
	}
}

// ComponentCount is the number of maturity dimensions
const ComponentCount = 4

// ComponentNames are the YAML/JSON keys of the maturity dimensions, in order
var ComponentNames = [ComponentCount]string{
	"diplomacy_security",
	"primary_industry_energy",
	"education_welfare",
	"culture_spirit",
}

// MaturityComponents holds the four cultural-maturity dimensions, each in [0,1]
type MaturityComponents struct {
	DiplomacySecurity     float64 `yaml:"diplomacy_security" json:"diplomacy_security"`
	PrimaryIndustryEnergy float64 `yaml:"primary_industry_energy" json:"primary_industry_energy"`
	EducationWelfare      float64 `yaml:"education_welfare" json:"education_welfare"`
	CultureSpirit         float64 `yaml:"culture_spirit" json:"culture_spirit"`
}

// UniformComponents returns components all set to v
func UniformComponents(v float64) MaturityComponents {
	return MaturityComponents{v, v, v, v}
}

// Values returns the components in canonical order
func (c MaturityComponents) Values() [ComponentCount]float64 {
	return [ComponentCount]float64{c.DiplomacySecurity, c.PrimaryIndustryEnergy, c.EducationWelfare, c.CultureSpirit}
}

// Set assigns the i-th component in canonical order
func (c *MaturityComponents) Set(i int, v float64) {
	switch i {
	case 0:
		c.DiplomacySecurity = v
	case 1:
		c.PrimaryIndustryEnergy = v
	case 2:
		c.EducationWelfare = v
	case 3:
		c.CultureSpirit = v
	}
}

// ComponentWeights holds the non-negative weights used by weighted aggregation
type ComponentWeights struct {
	DiplomacySecurity     float64 `yaml:"diplomacy_security" json:"diplomacy_security"`
	PrimaryIndustryEnergy float64 `yaml:"primary_industry_energy" json:"primary_industry_energy"`
	EducationWelfare      float64 `yaml:"education_welfare" json:"education_welfare"`
	CultureSpirit         float64 `yaml:"culture_spirit" json:"culture_spirit"`
}

// DefaultWeights returns the 0.3/0.3/0.2/0.2 weighting
func DefaultWeights() ComponentWeights {
	return ComponentWeights{0.3, 0.3, 0.2, 0.2}
}

// Values returns the weights in canonical order
func (w ComponentWeights) Values() [ComponentCount]float64 {
	return [ComponentCount]float64{w.DiplomacySecurity, w.PrimaryIndustryEnergy, w.EducationWelfare, w.CultureSpirit}
}

// Sum returns the total weight
func (w ComponentWeights) Sum() float64 {
	var total float64
	for _, v := range w.Values() {
		total += v
	}
	return total
}

// SimulationConfig is the complete input of a single forward simulation
type SimulationConfig struct {
	InitialResource    float64            `yaml:"initial_resource" json:"initial_resource"`
	InitialDesire      float64            `yaml:"initial_desire" json:"initial_desire"`
	InitialMaturity    float64            `yaml:"initial_maturity" json:"initial_maturity"`
	Components         MaturityComponents `yaml:"maturity_components" json:"maturity_components"`
	Weights            ComponentWeights   `yaml:"component_weights" json:"component_weights"`
	DesireGrowthRate   float64            `yaml:"desire_growth_rate" json:"desire_growth_rate"`     // α
	ResourceGrowthRate float64            `yaml:"resource_growth_rate" json:"resource_growth_rate"` // β
	HorizonYears       int                `yaml:"horizon_years" json:"horizon_years"`
	Aggregation        AggregationMode    `yaml:"maturity_aggregation" json:"maturity_aggregation"`
	VerdictPolicy      string             `yaml:"verdict_policy" json:"verdict_policy"`
}

// NamedSeries is a single labelled time series handed to a renderer
type NamedSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Trajectory holds the yearly series; index 0 is the initial state
type Trajectory struct {
	Years    []int     `yaml:"years" json:"years"`
	Resource []float64 `yaml:"resource" json:"resource"`
	Desire   []float64 `yaml:"desire" json:"desire"`
	Score    []float64 `yaml:"score" json:"score"`
	Harmony  []float64 `yaml:"harmony,omitempty" json:"harmony,omitempty"`
}

// Len returns the number of points in each series
func (t Trajectory) Len() int {
	return len(t.Score)
}

// FinalScore returns the last score, or 0 for an empty trajectory
func (t Trajectory) FinalScore() float64 {
	if len(t.Score) == 0 {
		return 0
	}
	return t.Score[len(t.Score)-1]
}

// Series returns the trajectory as an ordered list of named series.
// Harmony is included only when it was reported.
func (t Trajectory) Series() []NamedSeries {
	series := []NamedSeries{
		{Name: "Resource", Values: t.Resource},
		{Name: "Desire", Values: t.Desire},
		{Name: "Score", Values: t.Score},
	}
	if t.Harmony != nil {
		series = append(series, NamedSeries{Name: "HarmonyIndex", Values: t.Harmony})
	}
	return series
}

// SimulationResult is everything a renderer needs from one run
type SimulationResult struct {
	Config        SimulationConfig `yaml:"config" json:"config"`
	MaturityIndex float64          `yaml:"maturity_index" json:"maturity_index"`
	HarmonyIndex  *float64         `yaml:"harmony_index,omitempty" json:"harmony_index,omitempty"`
	Trajectory    Trajectory       `yaml:"trajectory" json:"trajectory"`
	FinalScore    float64          `yaml:"final_score" json:"final_score"`
	Policy        string           `yaml:"policy" json:"policy"`
	Verdict       Verdict          `yaml:"verdict" json:"verdict"`
}
