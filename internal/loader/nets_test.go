package loader

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"zcalc/internal/domain"
)

func TestLoadNetsMinimal(t *testing.T) {
	path := writeDoc(t, "nets.yaml", `
nets:
  - {name: VCC, layer: L1, role: power}
`)

	nets, err := LoadNets(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nets) != 1 {
		t.Fatalf("expected 1 net, got %d", len(nets))
	}

	n := nets[0]
	if n.Name != "VCC" || n.Layer != "L1" || n.Role != domain.NetPower {
		t.Errorf("net = %+v, want VCC/L1/power", n)
	}
	if n.Geometry != domain.GeometryAuto {
		t.Errorf("Geometry = %q, want auto default", n.Geometry)
	}
	for field, v := range map[string]*float64{
		"Z0TargetOhm":          n.Z0TargetOhm,
		"ZdiffTargetOhm":       n.ZdiffTargetOhm,
		"IDcA":                 n.IDcA,
		"TempRiseC":            n.TempRiseC,
		"LengthMm":             n.LengthMm,
		"VoltageV":             n.VoltageV,
		"MinWidthMm":           n.MinWidthMm,
		"PreferredClearanceMm": n.PreferredClearanceMm,
	} {
		if v != nil {
			t.Errorf("%s = %v, want nil", field, *v)
		}
	}
	if n.RefPlaneAbove != "" || n.RefPlaneBelow != "" || n.Notes != "" {
		t.Errorf("optional strings should be empty, got %+v", n)
	}
}

func TestLoadNetsFullEntry(t *testing.T) {
	path := writeDoc(t, "nets.yaml", `
nets:
  - name: USB_DP
    layer: L1
    role: diff_signal
    geometry: microstrip
    z0_target_ohm: 45
    zdiff_target_ohm: 90
    length_mm: 42.5
    min_width_mm: 0.1
    ref_plane_below: L2
    notes: pair with USB_DM
  - name: VBUS
    layer: L1
    role: power
    i_dc_a: 2.5
    temp_rise_c: 10
    voltage_v: 5
`)

	nets, err := LoadNets(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nets) != 2 {
		t.Fatalf("expected 2 nets, got %d", len(nets))
	}

	dp := nets[0]
	if dp.Geometry != domain.GeometryMicrostrip {
		t.Errorf("Geometry = %q, want microstrip", dp.Geometry)
	}
	if !dp.IsDifferential() {
		t.Error("expected USB_DP to be differential")
	}
	if dp.ZdiffTargetOhm == nil || *dp.ZdiffTargetOhm != 90 {
		t.Errorf("ZdiffTargetOhm = %v, want 90", dp.ZdiffTargetOhm)
	}
	if dp.RefPlaneBelow != "L2" {
		t.Errorf("RefPlaneBelow = %q, want L2", dp.RefPlaneBelow)
	}
	if dp.Notes != "pair with USB_DM" {
		t.Errorf("Notes = %q", dp.Notes)
	}

	vbus := nets[1]
	if vbus.IDcA == nil || *vbus.IDcA != 2.5 {
		t.Errorf("IDcA = %v, want 2.5", vbus.IDcA)
	}
	if vbus.VoltageV == nil || *vbus.VoltageV != 5 {
		t.Errorf("VoltageV = %v, want 5", vbus.VoltageV)
	}
}

func TestLoadNetsOrderAndDuplicates(t *testing.T) {
	// Document order is preserved and duplicate names are not rejected
	path := writeDoc(t, "nets.yaml", `
nets:
  - {name: B, layer: L1, role: signal}
  - {name: A, layer: L1, role: signal}
  - {name: B, layer: L2, role: signal}
`)

	nets, err := LoadNets(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var names []string
	for _, n := range nets {
		names = append(names, n.Name)
	}
	if !reflect.DeepEqual(names, []string{"B", "A", "B"}) {
		t.Errorf("names = %v, want [B A B]", names)
	}
}

func TestLoadNetsEmptySection(t *testing.T) {
	path := writeDoc(t, "nets.yaml", "nets: []\n")
	nets, err := LoadNets(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nets) != 0 {
		t.Errorf("expected no nets, got %d", len(nets))
	}
}

func TestLoadNetsErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{"unparsable YAML", "nets: [unclosed", "parse net list YAML"},
		{"empty document", "", "empty net list document"},
		{"section not a sequence", "nets: {VCC: x}\n", "must be a sequence"},
		{"nil entry", "nets:\n  - ~\n", "net at index 0 must be a mapping"},
		{"missing name", "nets:\n  - {layer: L1, role: power}\n", "net at index 0 is missing required field: 'name'"},
		{"missing layer", "nets:\n  - {name: VCC, role: power}\n", "net 'VCC' is missing required field: 'layer'"},
		{"missing role", "nets:\n  - {name: VCC, layer: L1}\n", "net 'VCC' is missing required field: 'role'"},
		{"unknown role", "nets:\n  - {name: VCC, layer: L1, role: supply}\n", `net 'VCC' has unknown net role "supply"`},
		{"unknown geometry", "nets:\n  - {name: VCC, layer: L1, role: power, geometry: twisted}\n", `net 'VCC' has unknown geometry "twisted"`},
		{"non-numeric target", "nets:\n  - {name: VCC, layer: L1, role: power, i_dc_a: lots}\n", "'i_dc_a' must be a number"},
		{"negative target", "nets:\n  - {name: VCC, layer: L1, role: power, i_dc_a: -1}\n", "'i_dc_a' must not be negative"},
		{"non-string notes", "nets:\n  - {name: VCC, layer: L1, role: power, notes: [a]}\n", "'notes' must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDoc(t, "nets.yaml", tt.doc)
			_, err := LoadNets(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidNetList) {
				t.Errorf("errors.Is(ErrInvalidNetList) = false for %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantMsg)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadNets(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !errors.Is(err, ErrInvalidNetList) {
			t.Errorf("errors.Is(ErrInvalidNetList) = false for %v", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("errors.Is(os.ErrNotExist) = false for %v", err)
		}
	})
}

func TestLoadNetsIdempotent(t *testing.T) {
	path := writeDoc(t, "nets.yaml", `
nets:
  - {name: VCC, layer: L1, role: power, i_dc_a: 2}
  - {name: CLK, layer: L1, role: signal, z0_target_ohm: 50}
`)

	first, err := LoadNets(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := LoadNets(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("expected two loads of an unmodified file to be value-equal")
	}
}

func TestCrossCheck(t *testing.T) {
	st := &domain.Stackup{
		Name: "test",
		Layers: []domain.StackLayer{
			{Name: "L1", Type: domain.LayerCopper, Index: 0},
			{Name: "D1", Type: domain.LayerDielectric, Index: 1},
			{Name: "L2", Type: domain.LayerCopper, Index: 2},
		},
	}
	st.LayersByName = map[string]domain.StackLayer{}
	for _, l := range st.Layers {
		st.LayersByName[l.Name] = l
	}

	t.Run("valid references pass", func(t *testing.T) {
		nets := []domain.NetSpec{
			{Name: "VCC", Layer: "L1", Role: domain.NetPower},
			{Name: "CLK", Layer: "L1", Role: domain.NetSignal, RefPlaneBelow: "L2"},
		}
		if err := CrossCheck(st, nets); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name    string
		nets    []domain.NetSpec
		wantMsg string
	}{
		{
			"duplicate net name",
			[]domain.NetSpec{
				{Name: "VCC", Layer: "L1"},
				{Name: "VCC", Layer: "L2"},
			},
			"duplicates an earlier net name",
		},
		{
			"unknown layer",
			[]domain.NetSpec{{Name: "VCC", Layer: "L9"}},
			"references unknown layer 'L9'",
		},
		{
			"unknown ref plane",
			[]domain.NetSpec{{Name: "CLK", Layer: "L1", RefPlaneAbove: "L9"}},
			"references unknown layer 'L9'",
		},
		{
			"dielectric ref plane",
			[]domain.NetSpec{{Name: "CLK", Layer: "L1", RefPlaneBelow: "D1"}},
			"'D1' is not a copper layer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CrossCheck(st, tt.nets)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidNetList) {
				t.Errorf("errors.Is(ErrInvalidNetList) = false for %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}
