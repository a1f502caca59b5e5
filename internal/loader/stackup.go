package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"zcalc/internal/domain"

	"gopkg.in/yaml.v3"
)

// ParseMaterials validates the materials section and builds the
// name-keyed material mapping. The input is the raw decoded YAML value
// of the `materials` key: a mapping from material name to a property
// mapping. All faults return a *MaterialsError.
func ParseMaterials(raw any) (map[string]domain.Material, error) {
	md, ok := asMapping(raw)
	if !ok {
		return nil, &MaterialsError{Reason: "`materials` must be a mapping"}
	}

	materials := make(map[string]domain.Material, len(md))

	for name, v := range md {
		entry, ok := asMapping(v)
		if !ok {
			return nil, &MaterialsError{Material: name, Reason: "must be a mapping"}
		}

		kindRaw, ok := entry["kind"]
		if !ok {
			return nil, &MaterialsError{Material: name, Field: "kind",
				Reason: "is missing required field: 'kind'"}
		}
		kindStr, ok := asString(kindRaw)
		if !ok {
			return nil, &MaterialsError{Material: name, Field: "kind",
				Reason: "field 'kind' must be a string"}
		}
		kind, err := domain.ParseMaterialKind(kindStr)
		if err != nil {
			return nil, &MaterialsError{Material: name, Field: "kind",
				Reason: fmt.Sprintf("has %s", err)}
		}

		mat := domain.Material{Name: name, Kind: kind}

		if mat.Er, ok = optionalFloat(entry, "er"); !ok {
			return nil, &MaterialsError{Material: name, Field: "er",
				Reason: "field 'er' must be a number"}
		}
		if mat.Conductivity, ok = optionalFloat(entry, "conductivity"); !ok {
			return nil, &MaterialsError{Material: name, Field: "conductivity",
				Reason: "field 'conductivity' must be a number"}
		}

		materials[name] = mat
	}

	return materials, nil
}

// ParseLayers validates the layers section in document order and
// returns the layers with positional indices assigned. The materials
// mapping may be nil, in which case material references are not
// resolved; callers doing that validate materials separately. An empty
// sequence is valid and yields an empty result. All faults return a
// *LayersError naming the entry's position.
func ParseLayers(raw any, materials map[string]domain.Material) ([]domain.StackLayer, error) {
	seq, ok := asSequence(raw)
	if !ok {
		return nil, &LayersError{Index: -1, Reason: "`layers` must be a sequence"}
	}

	layers := make([]domain.StackLayer, 0, len(seq))

	for idx, v := range seq {
		entry, ok := asMapping(v)
		if !ok {
			return nil, &LayersError{Index: idx, Reason: "must be a mapping"}
		}

		// Presence before type before cross-reference, in field order.
		for _, field := range []string{"name", "type", "material", "thickness_um"} {
			if _, ok := entry[field]; !ok {
				return nil, &LayersError{Index: idx, Field: field,
					Reason: fmt.Sprintf("is missing required field: '%s'", field)}
			}
		}

		name, ok := asString(entry["name"])
		if !ok {
			return nil, &LayersError{Index: idx, Field: "name",
				Reason: "field 'name' must be a string"}
		}

		typeStr, ok := asString(entry["type"])
		if !ok {
			return nil, &LayersError{Index: idx, Field: "type",
				Reason: "field 'type' must be a string"}
		}
		layerType, err := domain.ParseLayerType(typeStr)
		if err != nil {
			return nil, &LayersError{Index: idx, Field: "type",
				Reason: fmt.Sprintf("has %s", err)}
		}

		matName, ok := asString(entry["material"])
		if !ok {
			return nil, &LayersError{Index: idx, Field: "material",
				Reason: "field 'material' must be a string"}
		}
		if materials != nil {
			if _, ok := materials[matName]; !ok {
				return nil, &LayersError{Index: idx, Field: "material",
					Reason: fmt.Sprintf("references unknown material '%s'", matName)}
			}
		}

		thickness, ok := asFloat(entry["thickness_um"])
		if !ok {
			return nil, &LayersError{Index: idx, Field: "thickness_um",
				Reason: "field 'thickness_um' must be a number"}
		}

		layers = append(layers, domain.StackLayer{
			Name:         name,
			Type:         layerType,
			Index:        idx,
			ThicknessUm:  thickness,
			MaterialName: matName,
		})
	}

	return layers, nil
}

// ParseFabrication validates the optional fabrication section.
// A nil value (section absent or null) yields DefaultFabrication;
// fields given override the defaults individually and must be positive
// numbers. Faults return a *StackupError.
func ParseFabrication(raw any) (domain.Fabrication, error) {
	fab := domain.DefaultFabrication()
	if raw == nil {
		return fab, nil
	}

	entry, ok := asMapping(raw)
	if !ok {
		return fab, &StackupError{Reason: "`fabrication` must be a mapping"}
	}

	fields := []struct {
		key string
		dst *float64
	}{
		{"min_trace_mm", &fab.MinTraceMm},
		{"min_clearance_mm", &fab.MinClearanceMm},
		{"max_copper_oz", &fab.MaxCopperOz},
	}
	for _, f := range fields {
		v, ok := entry[f.key]
		if !ok || v == nil {
			continue
		}
		n, ok := asFloat(v)
		if !ok || n <= 0 {
			return fab, &StackupError{Reason: fmt.Sprintf(
				"fabrication field '%s' must be a positive number", f.key)}
		}
		*f.dst = n
	}

	return fab, nil
}

// LoadStackup reads, parses and validates a stackup definition file.
// The file is read once to completion before any validation runs.
// Every failure, including YAML parse errors, propagates as a
// *StackupError; section errors are wrapped with their message intact.
func LoadStackup(path string) (*domain.Stackup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &StackupError{Err: fmt.Errorf("read stackup: %w", err)}
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &StackupError{Err: fmt.Errorf("parse stackup YAML: %w", err)}
	}
	if len(doc) == 0 {
		return nil, &StackupError{Reason: "empty stackup document"}
	}

	materials, err := ParseMaterials(sectionOr(doc, "materials", map[string]any{}))
	if err != nil {
		return nil, &StackupError{Err: err}
	}

	layers, err := ParseLayers(sectionOr(doc, "layers", []any{}), materials)
	if err != nil {
		return nil, &StackupError{Err: err}
	}

	fab, err := ParseFabrication(doc["fabrication"])
	if err != nil {
		return nil, err
	}

	byName := make(map[string]domain.StackLayer, len(layers))
	for _, l := range layers {
		if _, dup := byName[l.Name]; dup {
			return nil, &StackupError{Reason: fmt.Sprintf("duplicate layer name '%s'", l.Name)}
		}
		byName[l.Name] = l
	}

	name, _ := asString(doc["name"])
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &domain.Stackup{
		Name:         name,
		Layers:       layers,
		LayersByName: byName,
		Materials:    materials,
		Fabrication:  fab,
	}, nil
}

// sectionOr returns the named top-level section, substituting def when
// the key is absent or explicitly null.
func sectionOr(doc map[string]any, key string, def any) any {
	v, ok := doc[key]
	if !ok || v == nil {
		return def
	}
	return v
}

// optionalFloat reads an optional numeric key. The second return is
// false only when the key is present but not a number.
func optionalFloat(entry map[string]any, key string) (*float64, bool) {
	v, ok := entry[key]
	if !ok || v == nil {
		return nil, true
	}
	f, ok := asFloat(v)
	if !ok {
		return nil, false
	}
	return &f, true
}
