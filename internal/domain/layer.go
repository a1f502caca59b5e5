package domain

import "fmt"

// LayerType classifies a physical layer in the stack
type LayerType string

const (
	LayerCopper     LayerType = "copper"
	LayerDielectric LayerType = "dielectric"
)

// ParseLayerType converts a YAML tag to a LayerType.
// Unknown tags are an error, never silently defaulted.
func ParseLayerType(s string) (LayerType, error) {
	switch s {
	case "copper":
		return LayerCopper, nil
	case "dielectric":
		return LayerDielectric, nil
	default:
		return "", fmt.Errorf("unknown layer type %q", s)
	}
}

// StackLayer is one physical layer in manufacturing order.
// Index is the layer's zero-based position in the document sequence
// (first entry = top of stack); it is assigned by the loader, never
// taken from the document.
type StackLayer struct {
	Name         string    `json:"name"`
	Type         LayerType `json:"type"`
	Index        int       `json:"index"`
	ThicknessUm  float64   `json:"thickness_um"`
	MaterialName string    `json:"material"`
}
