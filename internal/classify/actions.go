// Package classify derives a single record from command line values,
// without touching the network.
package classify

import (
	"io"
	"os"

	"github.com/dtnitsch/geosat-report/models"
	"github.com/dtnitsch/geosat-report/pkg/derive"
	"github.com/dtnitsch/geosat-report/pkg/report"
	"github.com/urfave/cli/v2"
)

var Flags = []cli.Flag{
	&cli.StringFlag{Name: "name", Usage: "satellite name"},
	&cli.StringFlag{Name: "mission-type", Usage: "mission type, e.g. Communication"},
	&cli.StringFlag{Name: "launch", Usage: "launch date as D.M.YYYY, a bare year, or a text containing 'cancelled'", Required: true},
	&cli.StringFlag{Name: "lifetime", Usage: "design lifetime, e.g. '15 years'"},
	&cli.StringFlag{Name: "mass", Usage: "dry mass text, e.g. '2300 kg'"},
	&cli.StringFlag{Name: "orbit", Usage: "orbit type, e.g. GEO"},
	&cli.StringFlag{Name: "background", Usage: "mission background text"},
}

// ClassifyAction prints the record derived from the flags.
func ClassifyAction(c *cli.Context) error {
	return classify(os.Stdout, c.String("format"), derive.NewDeriver(), RawFromFlags(c))
}

// RawFromFlags collects the raw page fields from the flags.
func RawFromFlags(c *cli.Context) models.RawFields {
	return models.RawFields{
		Name:        c.String("name"),
		MissionType: c.String("mission-type"),
		LaunchDate:  c.String("launch"),
		Lifetime:    c.String("lifetime"),
		MassText:    c.String("mass"),
		OrbitType:   c.String("orbit"),
		Background:  c.String("background"),
	}
}

func classify(w io.Writer, format string, deriver *derive.Deriver, raw models.RawFields) error {
	rec := deriver.Derive(raw)
	data, err := report.Marshal(format, rec)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
