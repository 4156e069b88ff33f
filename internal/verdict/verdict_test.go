package verdict

import (
	"math"
	"sync"
	"testing"

	"github.com/rgehrsitz/sustainsim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func mustGet(t *testing.T, r *Registry, name string) Policy {
	t.Helper()
	p, err := r.Get(name)
	require.NoError(t, err)
	return p
}

func TestBuiltins_Classify(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		policy string
		score  float64
		label  string
	}{
		{TwoBand, 0.0001, LabelSustainable},
		{TwoBand, 0, LabelUnsustainable},
		{TwoBand, -50, LabelUnsustainable},

		{ThreeBand, 20.5, LabelHighlySustainable},
		{ThreeBand, 20, LabelPartiallySustainable},
		{ThreeBand, 9.875, LabelPartiallySustainable},
		{ThreeBand, 0, LabelUnsustainable},

		{FourBand, 100, LabelHighlySustainable},
		{FourBand, 20, LabelStablySustainable},
		{FourBand, 5.01, LabelStablySustainable},
		{FourBand, 5, LabelCautionAdvised},
		{FourBand, 0.1, LabelCautionAdvised},
		{FourBand, 0, LabelUnsustainable},
		{FourBand, math.Inf(-1), LabelUnsustainable},
		{FourBand, math.Inf(1), LabelHighlySustainable},
	}

	for _, tt := range tests {
		t.Run(tt.policy, func(t *testing.T) {
			p := mustGet(t, r, tt.policy)
			assert.Equal(t, tt.label, Classify(tt.score, p).Label, "score %g", tt.score)
		})
	}
}

func TestClassify_NaNFallsToFloor(t *testing.T) {
	p := mustGet(t, NewRegistry(), ThreeBand)
	assert.Equal(t, LabelUnsustainable, p.Classify(math.NaN()).Label)
}

func TestPolicy_ExactlyOneBandMatches(t *testing.T) {
	scores := []float64{-1e9, -20, -0.5, 0, 1e-9, 4.99, 5, 5.5, 19.99, 20, 20.01, 1e9}
	for _, p := range NewRegistry().Policies() {
		for _, score := range scores {
			matches := 0
			for i := 0; i <= len(p.Bands); i++ {
				lower, upper := p.Range(i)
				if score > lower && score <= upper {
					matches++
					wantLabel := p.Floor.Label
					if i < len(p.Bands) {
						wantLabel = p.Bands[i].Label
					}
					assert.Equal(t, wantLabel, p.Classify(score).Label)
				}
			}
			// the floor range is (-inf, lowest]; -inf itself is never passed here
			assert.Equal(t, 1, matches, "policy %s score %g", p.Name, score)
		}
	}
}

func TestPolicy_Validate(t *testing.T) {
	floor := domain.Verdict{Label: "Bad"}

	tests := []struct {
		name    string
		policy  Policy
		wantErr bool
	}{
		{"valid", Policy{Name: "p", Bands: []Band{{Above: 10, Verdict: domain.Verdict{Label: "Good"}}}, Floor: floor}, false},
		{"floor only", Policy{Name: "p", Floor: floor}, false},
		{"missing name", Policy{Floor: floor}, true},
		{"missing floor", Policy{Name: "p"}, true},
		{"unlabelled band", Policy{Name: "p", Bands: []Band{{Above: 1}}, Floor: floor}, true},
		{"infinite bound", Policy{Name: "p", Bands: []Band{{Above: math.Inf(1), Verdict: domain.Verdict{Label: "x"}}}, Floor: floor}, true},
		{"ascending bounds", Policy{Name: "p", Bands: []Band{
			{Above: 0, Verdict: domain.Verdict{Label: "a"}},
			{Above: 10, Verdict: domain.Verdict{Label: "b"}},
		}, Floor: floor}, true},
		{"duplicate bounds", Policy{Name: "p", Bands: []Band{
			{Above: 5, Verdict: domain.Verdict{Label: "a"}},
			{Above: 5, Verdict: domain.Verdict{Label: "b"}},
		}, Floor: floor}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuiltins_AreValid(t *testing.T) {
	for _, p := range Builtins() {
		assert.NoError(t, p.Validate(), p.Name)
	}
}

func TestRegistry_RegisterAndList(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{FourBand, ThreeBand, TwoBand}, r.List())

	custom := Policy{
		Name:  "strict",
		Bands: []Band{{Above: 50, Verdict: domain.Verdict{Label: "Thriving", Tone: domain.TonePositive}}},
		Floor: domain.Verdict{Label: "Failing"},
	}
	require.NoError(t, r.Register(custom))
	assert.Equal(t, "Thriving", mustGet(t, r, "strict").Classify(51).Label)
	assert.Equal(t, "Failing", mustGet(t, r, "strict").Classify(50).Label)

	assert.Error(t, r.Register(Policy{Name: "broken"}))
	_, err := r.Get("broken")
	assert.Error(t, err)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				p, err := r.Get(ThreeBand)
				assert.NoError(t, err)
				_ = p.Classify(float64(j))
			}
		}()
	}
	wg.Wait()
}

func TestPolicy_YAMLDecode(t *testing.T) {
	src := `
name: strict
bands:
  - above: 50
    label: Thriving
    tone: positive
    description: Plenty of margin
  - above: 0
    label: Coping
    tone: caution
floor:
  label: Failing
  tone: negative
`
	var p Policy
	require.NoError(t, yaml.Unmarshal([]byte(src), &p))
	require.NoError(t, p.Validate())

	assert.Equal(t, []string{"Thriving", "Coping", "Failing"}, p.Labels())
	assert.Equal(t, domain.ToneCaution, p.Classify(10).Tone)
	assert.Equal(t, "Plenty of margin", p.Bands[0].Description)
}

func TestRangeText(t *testing.T) {
	assert.Equal(t, "score > 20.00", RangeText(20, math.Inf(1)))
	assert.Equal(t, "0.00 < score ≤ 20.00", RangeText(0, 20))
	assert.Equal(t, "score ≤ 0.00", RangeText(math.Inf(-1), 0))
	assert.Equal(t, "any score", RangeText(math.Inf(-1), math.Inf(1)))

	p := mustGet(t, NewRegistry(), FourBand)
	assert.Equal(t, "5.00 < score ≤ 20.00", p.RangeLabel(1))
	assert.Equal(t, "score ≤ 0.00", p.RangeLabel(3))
}
