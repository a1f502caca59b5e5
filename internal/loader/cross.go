package loader

import (
	"fmt"

	"zcalc/internal/domain"
)

// CrossCheck verifies the soft references between a net list and a
// stackup: net names must be unique, every net's layer must exist in
// the stackup, and explicit reference planes must name copper layers.
// This is an opt-in strict mode; the loaders never run it implicitly,
// so documents that fail it still load individually.
func CrossCheck(st *domain.Stackup, nets []domain.NetSpec) error {
	seen := make(map[string]bool, len(nets))

	for _, n := range nets {
		ident := fmt.Sprintf("net '%s'", n.Name)

		if seen[n.Name] {
			return &NetListError{Net: ident, Field: "name",
				Reason: "duplicates an earlier net name"}
		}
		seen[n.Name] = true

		if _, ok := st.LayerByName(n.Layer); !ok {
			return &NetListError{Net: ident, Field: "layer",
				Reason: fmt.Sprintf("references unknown layer '%s'", n.Layer)}
		}

		for _, ref := range []struct {
			field, name string
		}{
			{"ref_plane_above", n.RefPlaneAbove},
			{"ref_plane_below", n.RefPlaneBelow},
		} {
			if ref.name == "" {
				continue
			}
			layer, ok := st.LayerByName(ref.name)
			if !ok {
				return &NetListError{Net: ident, Field: ref.field,
					Reason: fmt.Sprintf("references unknown layer '%s'", ref.name)}
			}
			if layer.Type != domain.LayerCopper {
				return &NetListError{Net: ident, Field: ref.field,
					Reason: fmt.Sprintf("reference plane '%s' is not a copper layer", ref.name)}
			}
		}
	}

	return nil
}
