package fence

import "math"

// MaterialParams controls the spacing arithmetic of a material estimate
type MaterialParams struct {
	PostSpacingFeet     float64 `json:"post_spacing_feet" toml:"post_spacing_feet"`
	PicketWidthInches   float64 `json:"picket_width_inches" toml:"picket_width_inches"`
	PicketSpacingInches float64 `json:"picket_spacing_inches" toml:"picket_spacing_inches"`
	RailsPerSection     int     `json:"rails_per_section" toml:"rails_per_section"`
}

// DefaultMaterialParams returns the spacing used by a standard privacy fence
func DefaultMaterialParams() MaterialParams {
	return MaterialParams{
		PostSpacingFeet:     8,
		PicketWidthInches:   6,
		PicketSpacingInches: 0.5,
		RailsPerSection:     3,
	}
}

// MaterialEstimate is a basic bill of materials for a fence
type MaterialEstimate struct {
	Sections         int `json:"sections"`
	Posts            int `json:"posts"`
	Pickets          int `json:"pickets"`
	Rails            int `json:"rails"`
	ConcreteBags     int `json:"concrete_bags"`
	GateHardwareSets int `json:"gate_hardware_sets"`
}

// EstimateMaterials derives a bill of materials from total linear footage
// and gate count. Every count is rounded up. Non-positive footage, spacing
// or gate counts contribute nothing.
func EstimateMaterials(totalFeet float64, gates int, params MaterialParams) MaterialEstimate {
	if math.IsNaN(totalFeet) || math.IsInf(totalFeet, 0) || totalFeet < 0 {
		totalFeet = 0
	}
	if gates < 0 {
		gates = 0
	}

	sections := 0
	if params.PostSpacingFeet > 0 {
		sections = ceilInt(totalFeet / params.PostSpacingFeet)
	}

	pickets := 0
	if picketPitch := params.PicketWidthInches + params.PicketSpacingInches; picketPitch > 0 {
		pickets = ceilInt(totalFeet * (12 / picketPitch))
	}

	rails := 0
	if params.RailsPerSection > 0 {
		rails = sections * params.RailsPerSection
	}

	posts := sections + gates*2

	return MaterialEstimate{
		Sections:         sections,
		Posts:            posts,
		Pickets:          pickets,
		Rails:            rails,
		ConcreteBags:     posts,
		GateHardwareSets: gates,
	}
}

// EstimateProjectMaterials estimates materials for the project's total
// linear footage and gate count.
func EstimateProjectMaterials(project Project, params MaterialParams) MaterialEstimate {
	return EstimateMaterials(TotalLength(project.Segments), project.GateCount, params)
}

func ceilInt(v float64) int {
	return int(math.Ceil(v))
}
