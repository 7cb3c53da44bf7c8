package report

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/geosat-report/models"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

func record(name string, status models.Status, launch, eol, orbit string, class models.Class) models.SatelliteRecord {
	return models.SatelliteRecord{
		Link:              "https://space.skyrocket.de/doc_sdat/" + strings.ToLower(name) + ".htm",
		Name:              name,
		MissionType:       "Communication",
		BackgroundSummary: "Geostationary communications satellite.",
		LaunchDate:        launch,
		EndOfLife:         eol,
		Mass:              models.KnownMass(3000),
		OrbitType:         orbit,
		SizeClass:         class,
		MissionStatus:     status,
		ProductCandidates: models.NoProductCandidates,
		ImageURL:          models.PhotoNotAvailable,
	}
}

func testRecords() []models.SatelliteRecord {
	return []models.SatelliteRecord{
		record("Keep", models.StatusOperational, "09.06.2001", "09.06.2030", "GEO", models.ClassA),
		record("StatusCancelled", models.StatusCancelled, "09.06.2001", "09.06.2030", "GEO", models.ClassA),
		record("LaunchCancelled", models.StatusOperational, "cancelled", "09.06.2030", "GEO", models.ClassA),
		record("EolCancelled", models.StatusOperational, "09.06.2001", "cancelled", "GEO", models.ClassA),
		record("Leo", models.StatusOperational, "09.06.2001", "09.06.2030", "LEO", models.ClassA),
		record("Small", models.StatusOperational, "09.06.2001", "09.06.2030", "GEO", models.ClassB),
		record("Graveyard", models.StatusMissionComplete, "09.06.2001", "09.06.2014", "GEO, Graveyard", models.ClassA),
		record("Lowercase", models.StatusOperational, "09.06.2001", "09.06.2030", "geo", models.ClassA),
	}
}

func TestRevised(t *testing.T) {
	got := Revised(testRecords())

	var names []string
	for _, rec := range got {
		names = append(names, rec.Name)
	}
	want := []string{"Keep", "Graveyard"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("Revised() = %v, want %v", names, want)
	}
}

func TestRevised_Empty(t *testing.T) {
	if got := Revised(nil); len(got) != 0 {
		t.Errorf("Revised(nil) = %v, want empty", got)
	}
}

func TestRow_ColumnOrder(t *testing.T) {
	rec := testRecords()[0]
	row := Row(rec)
	if len(row) != len(Columns) {
		t.Fatalf("Row() has %d cells, want %d", len(row), len(Columns))
	}
	checks := map[string]string{
		"Link":                                rec.Link,
		"Satellite name":                      rec.Name,
		"Background":                          rec.BackgroundSummary,
		"Photo description":                   rec.ImageURL,
		"M.S.D (Mission Status Details)":      string(rec.MissionStatus),
		"Class type":                          string(rec.SizeClass),
		"P.P.C (Potential Product Candidate)": rec.ProductCandidates,
	}
	for i, col := range Columns {
		if want, ok := checks[col]; ok && row[i] != want {
			t.Errorf("column %q = %q, want %q", col, row[i], want)
		}
	}
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.xlsx")
	records := testRecords()

	if err := WriteWorkbook(path, records); err != nil {
		t.Fatalf("WriteWorkbook() failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != SheetAll || sheets[1] != SheetRevised {
		t.Fatalf("sheets = %v, want [%s %s]", sheets, SheetAll, SheetRevised)
	}

	all, err := f.GetRows(SheetAll)
	if err != nil {
		t.Fatalf("GetRows(%s) failed: %v", SheetAll, err)
	}
	if len(all) != len(records)+1 {
		t.Fatalf("%s has %d rows, want %d", SheetAll, len(all), len(records)+1)
	}
	if strings.Join(all[0], "|") != strings.Join(Columns, "|") {
		t.Errorf("header = %v, want %v", all[0], Columns)
	}
	for i, rec := range records {
		if all[i+1][1] != rec.Name {
			t.Errorf("row %d name = %q, want %q", i+1, all[i+1][1], rec.Name)
		}
	}

	revised, err := f.GetRows(SheetRevised)
	if err != nil {
		t.Fatalf("GetRows(%s) failed: %v", SheetRevised, err)
	}
	if len(revised) != 3 {
		t.Fatalf("%s has %d rows, want 3", SheetRevised, len(revised))
	}
	if revised[1][1] != "Keep" || revised[2][1] != "Graveyard" {
		t.Errorf("revised names = %q, %q", revised[1][1], revised[2][1])
	}

	headerStyle, err := f.GetCellStyle(SheetRevised, "A1")
	if err != nil {
		t.Fatalf("GetCellStyle() failed: %v", err)
	}
	cellStyle, err := f.GetCellStyle(SheetRevised, "K3")
	if err != nil {
		t.Fatalf("GetCellStyle() failed: %v", err)
	}
	if headerStyle == 0 || cellStyle == 0 || headerStyle == cellStyle {
		t.Errorf("revised styles header=%d cell=%d, want distinct non-default styles", headerStyle, cellStyle)
	}
}

func TestWriteWorkbook_NoRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := WriteWorkbook(path, nil); err != nil {
		t.Fatalf("WriteWorkbook() failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{SheetAll, SheetRevised} {
		rows, err := f.GetRows(sheet)
		if err != nil {
			t.Fatalf("GetRows(%s) failed: %v", sheet, err)
		}
		if len(rows) != 1 {
			t.Errorf("%s has %d rows, want header only", sheet, len(rows))
		}
	}
}

func TestWriteWorkbook_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "out.xlsx")
	if err := WriteWorkbook(path, testRecords()); err == nil {
		t.Error("WriteWorkbook() into a missing directory succeeded")
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	recs := testRecords()[:2]
	recs[1].Mass = models.Mass{}

	PrintTable(&buf, recs)

	out := buf.String()
	for _, want := range []string{"Satellite name", "Keep", "StatusCancelled", models.MassNotAvailable, "3000"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestMarshal(t *testing.T) {
	rec := testRecords()[0]
	rec.Mass = models.Mass{}

	t.Run("json", func(t *testing.T) {
		data, err := Marshal("json", rec)
		if err != nil {
			t.Fatalf("Marshal(json) failed: %v", err)
		}
		var got map[string]interface{}
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if got["mass"] != models.MassNotAvailable {
			t.Errorf("mass = %v, want %q", got["mass"], models.MassNotAvailable)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := Marshal("yaml", rec)
		if err != nil {
			t.Fatalf("Marshal(yaml) failed: %v", err)
		}
		var got map[string]interface{}
		if err := yaml.Unmarshal(data, &got); err != nil {
			t.Fatalf("invalid YAML: %v", err)
		}
		if got["name"] != "Keep" {
			t.Errorf("name = %v, want Keep", got["name"])
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := Marshal("xml", rec); err == nil {
			t.Error("Marshal(xml) succeeded")
		}
	})
}
