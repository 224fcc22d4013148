package engine

import "github.com/dparedes/hormigo/internal/domain"

// Preset is a named reference mix used to pre-fill inputs.
type Preset struct {
	Name string
	Mix  domain.MixDesign
}

// Presets returns the static reference-mix catalog in display order.
// A fresh slice is built per call; entries are never mutated.
func Presets() []Preset {
	return []Preset{
		{
			Name: "C20 - Uso General",
			Mix: domain.MixDesign{
				Cement: 280, Slag: 70, FlyAsh: 0, Water: 175,
				Superplasticizer: 2.5, CoarseAggregate: 950, FineAggregate: 750, AgeDays: 28,
			},
		},
		{
			Name: "C25 - Estructural",
			Mix: domain.MixDesign{
				Cement: 320, Slag: 80, FlyAsh: 20, Water: 165,
				Superplasticizer: 4.0, CoarseAggregate: 975, FineAggregate: 775, AgeDays: 28,
			},
		},
		{
			Name: "C30 - Alta Resistencia",
			Mix: domain.MixDesign{
				Cement: 380, Slag: 95, FlyAsh: 45, Water: 155,
				Superplasticizer: 6.5, CoarseAggregate: 1000, FineAggregate: 800, AgeDays: 28,
			},
		},
		{
			Name: "Hormigón Joven - 7 días",
			Mix: domain.MixDesign{
				Cement: 350, Slag: 0, FlyAsh: 0, Water: 170,
				Superplasticizer: 3.5, CoarseAggregate: 980, FineAggregate: 780, AgeDays: 7,
			},
		},
		{
			Name: "Hormigón Maduro - 90 días",
			Mix: domain.MixDesign{
				Cement: 300, Slag: 150, FlyAsh: 75, Water: 160,
				Superplasticizer: 5.0, CoarseAggregate: 950, FineAggregate: 750, AgeDays: 90,
			},
		},
	}
}

// DefaultMix is the neutral mix used to pre-fill the input form when no
// preset is selected.
func DefaultMix() domain.MixDesign {
	return domain.MixDesign{
		Cement: 280, Slag: 0, FlyAsh: 0, Water: 175,
		Superplasticizer: 2.5, CoarseAggregate: 975, FineAggregate: 775, AgeDays: 28,
	}
}

// PresetByName looks up a preset by exact name. An absent name is a
// caller error, reported with ok=false rather than a failure.
func PresetByName(name string) (domain.MixDesign, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p.Mix, true
		}
	}
	return domain.MixDesign{}, false
}
