package feeds

// Selection mirrors the pickers of the calculator screen: every field but RPM and Unit
// is a position in the corresponding menu.
type Selection struct {
	Machine    int     `json:"machine"`
	CutWidth   int     `json:"cutWidth"`
	Flutes     int     `json:"flutes"`
	Aggression int     `json:"aggression"`
	Material   int     `json:"material"`
	RPM        float64 `json:"rpm"`
	Unit       Unit    `json:"unit"`
}

// DefaultSelection is the state the screen starts in.
func DefaultSelection() Selection {
	return Selection{
		Machine:    0, // PowerRoute
		CutWidth:   1, // 1/8"
		Flutes:     1, // 2 flutes
		Aggression: 1, // Normal
		Material:   2, // Hardwood
		RPM:        DefaultRPM,
		Unit:       UnitMillimeter,
	}
}

// Input resolves the menu positions. A position outside its menu resolves to a
// reference that Compute treats as missing.
func (s Selection) Input() Input {
	in := Input{
		CutWidth: CutterClass(-1),
		RPM:      s.RPM,
		Unit:     s.Unit,
	}
	if inRange(s.Machine, len(machines)) {
		in.Machine = machines[s.Machine].Name
	}
	if inRange(s.CutWidth, len(cutWidths)) {
		in.CutWidth = cutWidths[s.CutWidth].Class
	}
	if inRange(s.Flutes, len(flutes)) {
		in.Flutes = flutes[s.Flutes]
	}
	if inRange(s.Aggression, len(aggressions)) {
		in.Aggression = aggressions[s.Aggression].Name
	}
	if inRange(s.Material, len(materials)) {
		in.Material = materials[s.Material].Name
	}
	return in
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}

// Cutter returns the cut-width menu entry the selection points at.
func (s Selection) Cutter() (CutWidthOption, bool) {
	if !inRange(s.CutWidth, len(cutWidths)) {
		return CutWidthOption{}, false
	}
	return cutWidths[s.CutWidth], true
}
