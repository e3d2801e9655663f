package feeds

import "slices"

const (
	MachinePowerRoute = "PowerRoute"
	MachineM3         = "M3"
	MachineCarveKing  = "CarveKing"
	MachineMegaV      = "MegaV"

	AggressionConservative = "Conservative"
	AggressionNormal       = "Normal"
	AggressionAggressive   = "Aggressive"

	MaterialAluminum    = "Aluminum (6061)"
	MaterialHardPlastic = "Hard Plastic (i.e. acrylic, pvc)"
	MaterialHardwood    = "Hardwood (i.e. maple, oak, walnut)"
	MaterialMDF         = "MDF"
	MaterialSoftPlastic = "Soft Plastic (i.e. abs, styrofoam)"
	MaterialSoftwood    = "Softwood (i.e. pine, cedar, fir)"
)

var machines = []MachineProfile{
	{Name: MachinePowerRoute, Factor: 2},
	{Name: MachineM3, Factor: 1},
	{Name: MachineCarveKing, Factor: 0.7},
	{Name: MachineMegaV, Factor: 1.7},
}

var cutWidths = []CutWidthOption{
	{Label: `1/16"`, DiameterMM: 1.5875, Class: CutterClassXS},
	{Label: `1/8"`, DiameterMM: 3.175, Class: CutterClassS},
	{Label: `3/16"`, DiameterMM: 4.7625, Class: CutterClassM},
	{Label: `1/4"`, DiameterMM: 6.35, Class: CutterClassL},
	{Label: "2mm", DiameterMM: 2, Class: CutterClassXS},
	{Label: "3mm", DiameterMM: 3, Class: CutterClassS},
	{Label: "5mm", DiameterMM: 5, Class: CutterClassM},
	{Label: "6mm", DiameterMM: 6, Class: CutterClassL},
}

var flutes = []int{1, 2, 3, 4}

var aggressions = []AggressionOption{
	{Name: AggressionConservative, Factor: 0.5},
	{Name: AggressionNormal, Factor: 1},
	{Name: AggressionAggressive, Factor: 1.33},
}

var materials = []MaterialProfile{
	{
		Name:               MaterialAluminum,
		FeedRate:           Coefficients{0.0007, 0.0009, 0.001, 0.0011},
		Depth:              Coefficients{0.012, 0.018, 0.0175, 0.0175},
		FeedRateMultiplier: map[string]float64{MachinePowerRoute: 1.6},
	},
	{
		Name:               MaterialHardPlastic,
		FeedRate:           Coefficients{0.0015, 0.002, 0.0023, 0.0027},
		Depth:              Coefficients{0.05, 0.065, 0.075, 0.075},
		FeedRateMultiplier: map[string]float64{MachinePowerRoute: 2},
	},
	{
		Name:               MaterialHardwood,
		FeedRate:           Coefficients{0.0012, 0.0016, 0.002, 0.0023},
		Depth:              Coefficients{0.04, 0.06, 0.08, 0.08},
		FeedRateMultiplier: map[string]float64{MachinePowerRoute: 2},
	},
	{
		Name:               MaterialMDF,
		FeedRate:           Coefficients{0.0018, 0.002, 0.0023, 0.0027},
		Depth:              Coefficients{0.08, 0.12, 0.16, 0.17},
		FeedRateMultiplier: map[string]float64{MachinePowerRoute: 2},
	},
	{
		Name:               MaterialSoftPlastic,
		FeedRate:           Coefficients{0.0016, 0.002, 0.0023, 0.0025},
		Depth:              Coefficients{0.06, 0.07, 0.08, 0.08},
		FeedRateMultiplier: map[string]float64{MachinePowerRoute: 2},
	},
	{
		Name:               MaterialSoftwood,
		FeedRate:           Coefficients{0.0016, 0.0022, 0.0024, 0.0028},
		Depth:              Coefficients{0.06, 0.1, 0.14, 0.16},
		FeedRateMultiplier: map[string]float64{MachinePowerRoute: 2},
	},
}

// Machines returns the machine menu in display order.
func Machines() []MachineProfile { return slices.Clone(machines) }

// CutWidths returns the cutter diameter menu in display order.
func CutWidths() []CutWidthOption { return slices.Clone(cutWidths) }

// Flutes returns the supported flute counts.
func Flutes() []int { return slices.Clone(flutes) }

// Aggressions returns the aggression menu in display order.
func Aggressions() []AggressionOption { return slices.Clone(aggressions) }

// Materials returns the material menu in display order.
// The multiplier maps are shared with the package tables and must not be modified.
func Materials() []MaterialProfile { return slices.Clone(materials) }

func LookupMachine(name string) (MachineProfile, bool) {
	for _, m := range machines {
		if m.Name == name {
			return m, true
		}
	}
	return MachineProfile{}, false
}

func LookupMaterial(name string) (MaterialProfile, bool) {
	for _, m := range materials {
		if m.Name == name {
			return m, true
		}
	}
	return MaterialProfile{}, false
}

func LookupAggression(name string) (AggressionOption, bool) {
	for _, a := range aggressions {
		if a.Name == name {
			return a, true
		}
	}
	return AggressionOption{}, false
}

// LookupCutWidth finds a cutter by its menu label, e.g. `1/8"` or "6mm".
func LookupCutWidth(label string) (CutWidthOption, bool) {
	for _, c := range cutWidths {
		if c.Label == label {
			return c, true
		}
	}
	return CutWidthOption{}, false
}

// ValidFlutes reports whether n is one of the supported flute counts.
func ValidFlutes(n int) bool {
	return slices.Contains(flutes, n)
}
