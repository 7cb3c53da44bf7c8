package db

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/geosat-report/models"
	dbpkg "github.com/dtnitsch/geosat-report/pkg/db"
	"github.com/urfave/cli/v2"
	"github.com/xuri/excelize/v2"
)

func seedDB(t *testing.T) (string, int64) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runs.db")
	database, err := dbpkg.Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer database.Close()

	runID, err := database.CreateRun("https://example.com/search")
	if err != nil {
		t.Fatalf("CreateRun() failed: %v", err)
	}
	recs := []models.SatelliteRecord{
		{Position: 0, Link: "https://example.com/a.htm", Name: "Alpha", LaunchDate: "01.02.2010", EndOfLife: "01.02.2025",
			Mass: models.KnownMass(3200), OrbitType: "GEO", SizeClass: models.ClassA,
			MissionStatus: models.StatusOperational, ProductCandidates: models.NoProductCandidates},
		{Position: 1, Link: "https://example.com/b.htm", Name: "Beta", LaunchDate: "2031", EndOfLife: "2046",
			OrbitType: models.OrbitNotAvailable, SizeClass: models.ClassN,
			MissionStatus: models.StatusPlanned, ProductCandidates: models.NoProductCandidates},
	}
	if err := database.InsertRecords(runID, recs); err != nil {
		t.Fatalf("InsertRecords() failed: %v", err)
	}
	if err := database.RecordAccess(runID, dbpkg.Access{Link: "https://example.com/c.htm", StatusCode: 404, ErrorType: "http_error", ErrorMessage: "status code: 404"}); err != nil {
		t.Fatalf("RecordAccess() failed: %v", err)
	}
	if err := database.FinishRun(runID, 3, 2, 1, ""); err != nil {
		t.Fatalf("FinishRun() failed: %v", err)
	}
	return path, runID
}

func testApp(action cli.ActionFunc, flags ...cli.Flag) *cli.App {
	return &cli.App{
		Flags: []cli.Flag{&cli.StringFlag{Name: "db"}},
		Commands: []*cli.Command{{
			Name:   "cmd",
			Flags:  flags,
			Action: action,
		}},
	}
}

func TestGetRunIDOrLatest(t *testing.T) {
	path, runID := seedDB(t)

	tests := []struct {
		name    string
		args    []string
		want    int64
		wantErr bool
	}{
		{"latest", nil, runID, false},
		{"explicit", []string{"7"}, 7, false},
		{"invalid", []string{"abc"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got int64
			app := testApp(func(c *cli.Context) error {
				database, err := openDB(c)
				if err != nil {
					return err
				}
				defer database.Close()
				got, err = GetRunIDOrLatest(c, database)
				return err
			})
			err := app.Run(append([]string{"geosat", "--db", path, "cmd"}, tt.args...))
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("run ID = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetRunIDOrLatest_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	app := testApp(func(c *cli.Context) error {
		database, err := openDB(c)
		if err != nil {
			return err
		}
		defer database.Close()
		_, err = GetRunIDOrLatest(c, database)
		return err
	})
	err := app.Run([]string{"geosat", "--db", path, "cmd"})
	if err == nil || !strings.Contains(err.Error(), "no runs found") {
		t.Errorf("error = %v, want 'no runs found'", err)
	}
}

func TestPrintRunsAndRun(t *testing.T) {
	path, runID := seedDB(t)
	database, err := dbpkg.Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer database.Close()

	var buf bytes.Buffer
	runs, err := database.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	printRuns(&buf, path, runs)
	if !strings.Contains(buf.String(), "https://example.com/search") || !strings.Contains(buf.String(), "Total: 1 runs") {
		t.Errorf("printRuns() output:\n%s", buf.String())
	}

	buf.Reset()
	printRuns(&buf, path, nil)
	if !strings.Contains(buf.String(), "No runs found") || !strings.Contains(buf.String(), "Database: "+path) {
		t.Errorf("printRuns(nil) output: %s", buf.String())
	}

	run, _ := database.GetRun(runID)
	records, _ := database.GetRunRecords(runID)
	failures, _ := database.GetRunFailures(runID)
	buf.Reset()
	printRun(&buf, run, records, failures)
	out := buf.String()
	for _, want := range []string{"Alpha", "Beta", models.MassNotAvailable, "Failed links (1)", "http_error", "3 total (2 success, 1 failed)"} {
		if !strings.Contains(out, want) {
			t.Errorf("printRun() output missing %q:\n%s", want, out)
		}
	}
}

func TestReportAction(t *testing.T) {
	path, runID := seedDB(t)
	output := filepath.Join(t.TempDir(), "again.xlsx")

	app := testApp(ReportAction, &cli.StringFlag{Name: "output"})
	if err := app.Run([]string{"geosat", "--db", path, "cmd", "--output", output}); err != nil {
		t.Fatalf("ReportAction failed: %v", err)
	}

	f, err := excelize.OpenFile(output)
	if err != nil {
		t.Fatalf("failed to open report: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	if err != nil || len(rows) != 3 {
		t.Errorf("Sheet1 rows = %d, %v", len(rows), err)
	}
	revised, err := f.GetRows("Sheet1_Revised")
	if err != nil || len(revised) != 2 || revised[1][1] != "Alpha" {
		t.Errorf("Sheet1_Revised rows = %v, %v", revised, err)
	}

	database, err := dbpkg.Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer database.Close()
	run, err := database.GetRun(runID)
	if err != nil {
		t.Fatalf("GetRun() failed: %v", err)
	}
	if run.ReportPath.String != output {
		t.Errorf("ReportPath = %q, want %q", run.ReportPath.String, output)
	}
}

func TestReportAction_UnknownRun(t *testing.T) {
	path, _ := seedDB(t)
	app := testApp(ReportAction, &cli.StringFlag{Name: "output"})
	err := app.Run([]string{"geosat", "--db", path, "cmd", "--output", filepath.Join(t.TempDir(), "x.xlsx"), "99"})
	if !errors.Is(err, dbpkg.ErrRunNotFound) {
		t.Errorf("error = %v, want ErrRunNotFound", err)
	}
}
