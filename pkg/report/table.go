package report

import (
	"io"

	"github.com/dtnitsch/geosat-report/models"
	"github.com/jedib0t/go-pretty/v6/table"
)

// NewTable returns a rounded table writing to w.
func NewTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

// PrintTable renders the short columns of records for the terminal.
func PrintTable(w io.Writer, records []models.SatelliteRecord) {
	t := NewTable(w)
	t.AppendHeader(table.Row{"#", "Satellite name", "Launch Date", "End of life", "Mass", "Orbit type", "Class type", "M.S.D", "P.P.C"})
	for _, rec := range records {
		t.AppendRow(table.Row{
			rec.Position + 1,
			rec.Name,
			rec.LaunchDate,
			rec.EndOfLife,
			rec.MassLabel(),
			rec.OrbitType,
			rec.SizeClass,
			rec.MissionStatus,
			rec.ProductCandidates,
		})
	}
	t.AppendFooter(table.Row{"", "Total", len(records)})
	t.Render()
}
