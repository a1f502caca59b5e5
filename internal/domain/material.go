package domain

import "fmt"

// MaterialKind classifies a stackup material
type MaterialKind string

const (
	MaterialDielectric MaterialKind = "dielectric" // FR4 core, prepreg, solder mask
	MaterialCopper     MaterialKind = "copper"     // foil, plating
)

// ParseMaterialKind converts a YAML tag to a MaterialKind.
// Unknown tags are an error, never silently defaulted.
func ParseMaterialKind(s string) (MaterialKind, error) {
	switch s {
	case "dielectric":
		return MaterialDielectric, nil
	case "copper":
		return MaterialCopper, nil
	default:
		return "", fmt.Errorf("unknown material kind %q", s)
	}
}

// Material is a physical substance referenced by stackup layers.
// Er and Conductivity are nil when the document omits them; Er is only
// meaningful for dielectrics, Conductivity (S/m) only for copper.
type Material struct {
	Name         string       `json:"name"`
	Kind         MaterialKind `json:"kind"`
	Er           *float64     `json:"er,omitempty"`
	Conductivity *float64     `json:"conductivity,omitempty"`
}

// IsCopper reports whether the material is a conductor
func (m Material) IsCopper() bool {
	return m.Kind == MaterialCopper
}
