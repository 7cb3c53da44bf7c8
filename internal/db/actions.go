// Package db implements the commands that read stored runs back.
package db

import (
	"fmt"
	"io"
	"os"

	"github.com/dtnitsch/geosat-report/models"
	dbpkg "github.com/dtnitsch/geosat-report/pkg/db"
	"github.com/dtnitsch/geosat-report/pkg/report"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

const timeLayout = "2006-01-02 15:04:05"

// RunsAction lists stored runs, newest first.
func RunsAction(c *cli.Context) error {
	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return err
	}
	printRuns(os.Stdout, database.Path(), runs)
	return nil
}

func printRuns(w io.Writer, dbPath string, runs []dbpkg.Run) {
	fmt.Fprintf(w, "Database: %s\n\n", dbPath)
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs found")
		return
	}

	t := report.NewTable(w)
	t.AppendHeader(table.Row{"ID", "Created", "Links", "Success", "Failed", "Report", "Source"})
	for _, r := range runs {
		t.AppendRow(table.Row{
			r.RunID,
			r.CreatedAt.Format(timeLayout),
			r.LinkCount,
			r.SuccessCount,
			r.FailedCount,
			r.ReportPath.String,
			r.SearchURL,
		})
	}
	t.Render()

	fmt.Fprintf(w, "\nTotal: %d runs\n", len(runs))
	fmt.Fprintf(w, "\nTip: Use 'geosat db show <id>' to see details\n")
}

// ShowAction prints one run: its records and its failed links. With
// --format it prints the records as yaml or json instead.
func ShowAction(c *cli.Context) error {
	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRun(runID)
	if err != nil {
		return err
	}
	records, err := database.GetRunRecords(runID)
	if err != nil {
		return err
	}
	failures, err := database.GetRunFailures(runID)
	if err != nil {
		return err
	}

	if c.IsSet("format") {
		data, err := report.Marshal(c.String("format"), records)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	printRun(os.Stdout, run, records, failures)
	return nil
}

func printRun(w io.Writer, run *dbpkg.Run, records []models.SatelliteRecord, failures []dbpkg.Access) {
	fmt.Fprintf(w, "Run %d\n", run.RunID)
	fmt.Fprintf(w, "Created:  %s\n", run.CreatedAt.Format(timeLayout))
	fmt.Fprintf(w, "Source:   %s\n", run.SearchURL)
	fmt.Fprintf(w, "Links:    %d total (%d success, %d failed)\n", run.LinkCount, run.SuccessCount, run.FailedCount)
	if run.ReportPath.Valid {
		fmt.Fprintf(w, "Report:   %s\n", run.ReportPath.String)
	}

	if len(records) > 0 {
		fmt.Fprintf(w, "\nRecords (%d):\n", len(records))
		report.PrintTable(w, records)
	}

	if len(failures) > 0 {
		fmt.Fprintf(w, "\nFailed links (%d):\n", len(failures))
		t := report.NewTable(w)
		t.AppendHeader(table.Row{"Link", "Status", "Error type", "Error"})
		for _, f := range failures {
			t.AppendRow(table.Row{f.Link, f.StatusCode, f.ErrorType, f.ErrorMessage})
		}
		t.Render()
	}
}

// ReportAction writes the workbook of a stored run again.
func ReportAction(c *cli.Context) error {
	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}
	if _, err := database.GetRun(runID); err != nil {
		return err
	}
	records, err := database.GetRunRecords(runID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("run %d has no records", runID)
	}

	path := c.String("output")
	if err := report.WriteWorkbook(path, records); err != nil {
		return err
	}
	if err := database.SetReportPath(runID, path); err != nil {
		return err
	}

	fmt.Printf("Run %d: %d records written to %s (%d revised)\n", runID, len(records), path, len(report.Revised(records)))
	return nil
}
