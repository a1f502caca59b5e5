package loader

import (
	"fmt"
	"os"

	"zcalc/internal/domain"

	"gopkg.in/yaml.v3"
)

// LoadNets reads, parses and validates a net list file, returning the
// nets in document order. A missing `nets` section yields an empty
// result. Every failure propagates as a *NetListError.
func LoadNets(path string) ([]domain.NetSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &NetListError{Err: fmt.Errorf("read net list: %w", err)}
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &NetListError{Err: fmt.Errorf("parse net list YAML: %w", err)}
	}
	if len(doc) == 0 {
		return nil, &NetListError{Reason: "empty net list document"}
	}

	return ParseNets(sectionOr(doc, "nets", []any{}))
}

// ParseNets validates the nets section in document order. Duplicate
// net names are not rejected here; consumers that need uniqueness run
// CrossCheck or check it themselves.
func ParseNets(raw any) ([]domain.NetSpec, error) {
	seq, ok := asSequence(raw)
	if !ok {
		return nil, &NetListError{Reason: "`nets` must be a sequence"}
	}

	nets := make([]domain.NetSpec, 0, len(seq))

	for idx, v := range seq {
		entry, ok := asMapping(v)
		if !ok {
			return nil, &NetListError{Net: fmt.Sprintf("net at index %d", idx),
				Reason: "must be a mapping"}
		}

		ident := netIdent(entry, idx)

		for _, field := range []string{"name", "layer", "role"} {
			if _, ok := entry[field]; !ok {
				return nil, &NetListError{Net: ident, Field: field,
					Reason: fmt.Sprintf("is missing required field: '%s'", field)}
			}
		}

		name, ok := asString(entry["name"])
		if !ok {
			return nil, &NetListError{Net: ident, Field: "name",
				Reason: "field 'name' must be a string"}
		}
		layer, ok := asString(entry["layer"])
		if !ok {
			return nil, &NetListError{Net: ident, Field: "layer",
				Reason: "field 'layer' must be a string"}
		}

		roleStr, ok := asString(entry["role"])
		if !ok {
			return nil, &NetListError{Net: ident, Field: "role",
				Reason: "field 'role' must be a string"}
		}
		role, err := domain.ParseNetRole(roleStr)
		if err != nil {
			return nil, &NetListError{Net: ident, Field: "role",
				Reason: fmt.Sprintf("has %s", err)}
		}

		geometry := domain.GeometryAuto
		if v, ok := entry["geometry"]; ok && v != nil {
			geomStr, ok := asString(v)
			if !ok {
				return nil, &NetListError{Net: ident, Field: "geometry",
					Reason: "field 'geometry' must be a string"}
			}
			if geometry, err = domain.ParseGeometry(geomStr); err != nil {
				return nil, &NetListError{Net: ident, Field: "geometry",
					Reason: fmt.Sprintf("has %s", err)}
			}
		}

		net := domain.NetSpec{
			Name:     name,
			Layer:    layer,
			Role:     role,
			Geometry: geometry,
		}

		// Optional targets: type and sign checked only, physical range
		// is the solver's call.
		numeric := []struct {
			key string
			dst **float64
		}{
			{"z0_target_ohm", &net.Z0TargetOhm},
			{"zdiff_target_ohm", &net.ZdiffTargetOhm},
			{"i_dc_a", &net.IDcA},
			{"temp_rise_c", &net.TempRiseC},
			{"length_mm", &net.LengthMm},
			{"voltage_v", &net.VoltageV},
			{"min_width_mm", &net.MinWidthMm},
			{"preferred_clearance_mm", &net.PreferredClearanceMm},
		}
		for _, f := range numeric {
			val, err := optionalNetFloat(entry, ident, f.key)
			if err != nil {
				return nil, err
			}
			*f.dst = val
		}

		text := []struct {
			key string
			dst *string
		}{
			{"ref_plane_above", &net.RefPlaneAbove},
			{"ref_plane_below", &net.RefPlaneBelow},
			{"notes", &net.Notes},
		}
		for _, f := range text {
			v, ok := entry[f.key]
			if !ok || v == nil {
				continue
			}
			s, ok := asString(v)
			if !ok {
				return nil, &NetListError{Net: ident, Field: f.key,
					Reason: fmt.Sprintf("field '%s' must be a string", f.key)}
			}
			*f.dst = s
		}

		nets = append(nets, net)
	}

	return nets, nil
}

// netIdent builds a best-effort identifier for diagnostics: the net
// name when one is determinable, the entry's position otherwise.
func netIdent(entry map[string]any, idx int) string {
	if name, ok := asString(entry["name"]); ok && name != "" {
		return fmt.Sprintf("net '%s'", name)
	}
	return fmt.Sprintf("net at index %d", idx)
}

func optionalNetFloat(entry map[string]any, ident, key string) (*float64, error) {
	v, ok := entry[key]
	if !ok || v == nil {
		return nil, nil
	}
	f, ok := asFloat(v)
	if !ok {
		return nil, &NetListError{Net: ident, Field: key,
			Reason: fmt.Sprintf("field '%s' must be a number", key)}
	}
	if f < 0 {
		return nil, &NetListError{Net: ident, Field: key,
			Reason: fmt.Sprintf("field '%s' must not be negative", key)}
	}
	return &f, nil
}
