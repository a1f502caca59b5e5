package report

import (
	"sort"
	"strconv"

	"zcalc/internal/domain"
)

// Tabular row building shared by the markdown, simple and CSV/TSV
// exporters. Optional values render as "-".

func stackupHeader() []string {
	return []string{"#", "Layer", "Type", "Material", "Thickness (um)"}
}

func stackupRows(st *domain.Stackup) [][]string {
	rows := make([][]string, 0, len(st.Layers))
	for _, l := range st.Layers {
		rows = append(rows, []string{
			strconv.Itoa(l.Index),
			l.Name,
			string(l.Type),
			l.MaterialName,
			formatFloat(l.ThicknessUm),
		})
	}
	return rows
}

func materialsHeader() []string {
	return []string{"Material", "Kind", "Er", "Conductivity (S/m)"}
}

func materialsRows(st *domain.Stackup) [][]string {
	// Stable order: first use in the layer sequence, then leftovers by name
	ordered := make([]string, 0, len(st.Materials))
	seen := make(map[string]bool, len(st.Materials))
	for _, l := range st.Layers {
		if !seen[l.MaterialName] {
			seen[l.MaterialName] = true
			ordered = append(ordered, l.MaterialName)
		}
	}
	var unreferenced []string
	for name := range st.Materials {
		if !seen[name] {
			seen[name] = true
			unreferenced = append(unreferenced, name)
		}
	}
	sort.Strings(unreferenced)
	ordered = append(ordered, unreferenced...)

	rows := make([][]string, 0, len(ordered))
	for _, name := range ordered {
		m, ok := st.Materials[name]
		if !ok {
			continue
		}
		rows = append(rows, []string{
			m.Name,
			string(m.Kind),
			formatOptFloat(m.Er),
			formatOptFloat(m.Conductivity),
		})
	}
	return rows
}

func netsHeader() []string {
	return []string{"Net", "Layer", "Role", "Geometry", "Z0 (ohm)", "Zdiff (ohm)", "I DC (A)", "Min W (mm)"}
}

func netsRows(nets []domain.NetSpec) [][]string {
	rows := make([][]string, 0, len(nets))
	for _, n := range nets {
		rows = append(rows, []string{
			n.Name,
			n.Layer,
			string(n.Role),
			string(n.Geometry),
			formatOptFloat(n.Z0TargetOhm),
			formatOptFloat(n.ZdiffTargetOhm),
			formatOptFloat(n.IDcA),
			formatOptFloat(n.MinWidthMm),
		})
	}
	return rows
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatOptFloat(f *float64) string {
	if f == nil {
		return "-"
	}
	return formatFloat(*f)
}
