package domain

import "fmt"

// NetRole is the electrical role of a net
type NetRole string

const (
	NetPower      NetRole = "power"
	NetSignal     NetRole = "signal"
	NetDiffSignal NetRole = "diff_signal"
	NetRF         NetRole = "rf"
)

// ParseNetRole converts a YAML tag to a NetRole.
// Unknown tags are an error, never silently defaulted.
func ParseNetRole(s string) (NetRole, error) {
	switch s {
	case "power":
		return NetPower, nil
	case "signal":
		return NetSignal, nil
	case "diff_signal":
		return NetDiffSignal, nil
	case "rf":
		return NetRF, nil
	default:
		return "", fmt.Errorf("unknown net role %q", s)
	}
}

// Geometry is the copper geometry requested for a net
type Geometry string

const (
	GeometryAuto       Geometry = "auto"
	GeometryMicrostrip Geometry = "microstrip"
	GeometryStripline  Geometry = "stripline"
	GeometryCPWGround  Geometry = "cpw_ground" // coplanar waveguide with ground
)

// ParseGeometry converts a YAML tag to a Geometry.
// Unknown tags are an error, never silently defaulted.
func ParseGeometry(s string) (Geometry, error) {
	switch s {
	case "auto":
		return GeometryAuto, nil
	case "microstrip":
		return GeometryMicrostrip, nil
	case "stripline":
		return GeometryStripline, nil
	case "cpw_ground":
		return GeometryCPWGround, nil
	default:
		return "", fmt.Errorf("unknown geometry %q", s)
	}
}

// NetSpec is the electrical/layout requirement for one net.
// Layer, RefPlaneAbove and RefPlaneBelow are soft references into a
// Stackup's layer names; the loaders do not resolve them (see
// loader.CrossCheck for the opt-in strict check). Optional numeric
// targets are nil when the document omits them; the loader checks
// their type and sign only, physical plausibility is the solver's
// problem.
type NetSpec struct {
	Name     string   `json:"name"`
	Layer    string   `json:"layer"`
	Role     NetRole  `json:"role"`
	Geometry Geometry `json:"geometry"`

	// Impedance targets (single-ended / differential)
	Z0TargetOhm    *float64 `json:"z0_target_ohm,omitempty"`
	ZdiffTargetOhm *float64 `json:"zdiff_target_ohm,omitempty"`

	// Current / thermal
	IDcA      *float64 `json:"i_dc_a,omitempty"`
	TempRiseC *float64 `json:"temp_rise_c,omitempty"`

	// Other context
	LengthMm *float64 `json:"length_mm,omitempty"`
	VoltageV *float64 `json:"voltage_v,omitempty"`

	// Layout preferences
	MinWidthMm           *float64 `json:"min_width_mm,omitempty"`
	PreferredClearanceMm *float64 `json:"preferred_clearance_mm,omitempty"`

	// Explicit reference planes, by stackup layer name
	RefPlaneAbove string `json:"ref_plane_above,omitempty"`
	RefPlaneBelow string `json:"ref_plane_below,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// IsDifferential reports whether the net is routed as a coupled pair
func (n NetSpec) IsDifferential() bool {
	return n.Role == NetDiffSignal
}
