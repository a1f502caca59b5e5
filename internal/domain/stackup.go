package domain

// Fabrication holds the manufacturing limits a stackup was specified for.
// Values come from the optional `fabrication` section of the stackup
// document, falling back to DefaultFabrication when absent.
type Fabrication struct {
	MinTraceMm     float64 `json:"min_trace_mm"`
	MinClearanceMm float64 `json:"min_clearance_mm"`
	MaxCopperOz    float64 `json:"max_copper_oz"`
}

// DefaultFabrication returns the limits assumed when a stackup document
// carries no fabrication section: 0.1 mm trace / 0.1 mm clearance /
// 2 oz copper, the usual pooled-fab capability.
func DefaultFabrication() Fabrication {
	return Fabrication{
		MinTraceMm:     0.1,
		MinClearanceMm: 0.1,
		MaxCopperOz:    2.0,
	}
}

// Stackup is the aggregate root for a physical board cross-section.
// LayersByName is derived from Layers at load time and stays in sync
// with it; both are read-only after load.
type Stackup struct {
	Name         string                `json:"name"`
	Layers       []StackLayer          `json:"layers"`
	LayersByName map[string]StackLayer `json:"-"`
	Materials    map[string]Material   `json:"materials"`
	Fabrication  Fabrication           `json:"fabrication"`
}

// LayerByName looks up a layer by its document name
func (s *Stackup) LayerByName(name string) (StackLayer, bool) {
	l, ok := s.LayersByName[name]
	return l, ok
}

// CopperLayers returns the copper layers in stack order
func (s *Stackup) CopperLayers() []StackLayer {
	var out []StackLayer
	for _, l := range s.Layers {
		if l.Type == LayerCopper {
			out = append(out, l)
		}
	}
	return out
}

// TotalThicknessUm returns the summed thickness of all layers
func (s *Stackup) TotalThicknessUm() float64 {
	var total float64
	for _, l := range s.Layers {
		total += l.ThicknessUm
	}
	return total
}
