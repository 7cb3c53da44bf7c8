package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/geosat-report/internal/classify"
	dbcmd "github.com/dtnitsch/geosat-report/internal/db"
	"github.com/dtnitsch/geosat-report/internal/scrape"
	"github.com/dtnitsch/geosat-report/models"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "geosat",
		Usage: "Build a geostationary satellite report from the space catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML file with scrape settings",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "SQLite run database (default: next to the binary)",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: yaml or json",
				Value: "yaml",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "log errors only",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug output",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "scrape",
				Usage:  "Read the catalog, derive every record and write the xlsx report",
				Flags:  scrape.Flags,
				Action: scrape.ScrapeAction,
			},
			{
				Name:   "classify",
				Usage:  "Derive one record from flag values",
				Flags:  classify.Flags,
				Action: classify.ClassifyAction,
			},
			{
				Name:      "report",
				Usage:     "Write the xlsx report of a stored run again",
				ArgsUsage: "[run-id]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "path of the xlsx report",
						Value:   models.DefaultReportPath,
					},
				},
				Action: dbcmd.ReportAction,
			},
			{
				Name:  "db",
				Usage: "Inspect stored runs",
				Subcommands: []*cli.Command{
					{
						Name:  "runs",
						Usage: "List runs, newest first",
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Usage: "maximum number of runs (0 = all)",
								Value: 20,
							},
						},
						Action: dbcmd.RunsAction,
					},
					{
						Name:      "show",
						Usage:     "Show the records and failed links of a run (latest by default)",
						ArgsUsage: "[run-id]",
						Action:    dbcmd.ShowAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
