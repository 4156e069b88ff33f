package verdict

import "github.com/rgehrsitz/sustainsim/internal/domain"

// Built-in policy names
const (
	TwoBand   = "two-band"
	ThreeBand = "three-band"
	FourBand  = "four-band"

	DefaultPolicy = ThreeBand
)

// Built-in labels
const (
	LabelHighlySustainable    = "HighlySustainable"
	LabelStablySustainable    = "StablySustainable"
	LabelPartiallySustainable = "PartiallySustainable"
	LabelCautionAdvised       = "CautionAdvised"
	LabelSustainable          = "Sustainable"
	LabelUnsustainable        = "Unsustainable"
)

var unsustainable = domain.Verdict{
	Label:       LabelUnsustainable,
	Description: "Sustainability is at risk. Cultural maturity or resource policy needs a thorough review.",
	Tone:        domain.ToneNegative,
}

var highlySustainable = domain.Verdict{
	Label:       LabelHighlySustainable,
	Description: "A highly sustainable society. Stable prosperity can be expected.",
	Tone:        domain.TonePositive,
}

// Builtins returns fresh copies of the built-in policies
func Builtins() []Policy {
	return []Policy{
		{
			Name:        TwoBand,
			Description: "Sign of the final score only",
			Bands: []Band{
				{Above: 0, Verdict: domain.Verdict{
					Label:       LabelSustainable,
					Description: "Resources stay ahead of desire.",
					Tone:        domain.TonePositive,
				}},
			},
			Floor: unsustainable,
		},
		{
			Name:        ThreeBand,
			Description: "High / partial / unsustainable",
			Bands: []Band{
				{Above: 20, Verdict: highlySustainable},
				{Above: 0, Verdict: domain.Verdict{
					Label:       LabelPartiallySustainable,
					Description: "Conditionally sustainable. Risks remain and there is room for improvement.",
					Tone:        domain.ToneCaution,
				}},
			},
			Floor: unsustainable,
		},
		{
			Name:        FourBand,
			Description: "High / stable / caution / unsustainable",
			Bands: []Band{
				{Above: 20, Verdict: highlySustainable},
				{Above: 5, Verdict: domain.Verdict{
					Label:       LabelStablySustainable,
					Description: "Stably sustainable with a comfortable margin.",
					Tone:        domain.TonePositive,
				}},
				{Above: 0, Verdict: domain.Verdict{
					Label:       LabelCautionAdvised,
					Description: "Sustainable for now, but the margin is thin.",
					Tone:        domain.ToneCaution,
				}},
			},
			Floor: unsustainable,
		},
	}
}
