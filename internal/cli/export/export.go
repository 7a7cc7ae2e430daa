// Package export implements the 'export' command: writes the scan data of a
// .d datafile to CSV files.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/chromatools/agd/internal/core/reader"
)

// ExportCmd defines the structure for the 'export' command.
var ExportCmd = &cli.Command{
	Name:      "export",
	Usage:     "Exports the scan data of a .d datafile as CSV",
	ArgsUsage: "<datafile.d>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Base path for the output files (defaults to the datafile name)",
		},
		&cli.BoolFlag{
			Name:  "stream",
			Usage: "Also write an intensities stream (<base>.dat)",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose output",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 {
			return cli.Exit("Error: <datafile.d> argument is required.", 1)
		}
		path := c.Args().Get(0)
		verbose := c.Bool("verbose")

		base := c.String("output")
		if base == "" {
			base = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}

		data, err := reader.Open(path)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error reading %s: %v", path, err), 1)
		}
		if verbose {
			fmt.Printf("Read %d scans from %s\n", data.Len(), path)
		}

		if err := data.WriteCSV(base); err != nil {
			return cli.Exit(fmt.Sprintf("Error writing CSV files: %v", err), 1)
		}
		fmt.Printf("Wrote %s.I.csv and %s.mz.csv\n", base, base)

		if c.Bool("stream") {
			streamPath := base + ".dat"
			if err := data.WriteIntensitiesStream(streamPath); err != nil {
				return cli.Exit(fmt.Sprintf("Error writing intensities stream: %v", err), 1)
			}
			fmt.Printf("Wrote %s\n", streamPath)
		}
		return nil
	},
}
