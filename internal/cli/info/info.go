// Package info implements the 'info' command: a human-readable summary of a
// .d datafile.
package info

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/chromatools/agd/internal/core/reader"
)

// InfoCmd defines the structure for the 'info' command.
var InfoCmd = &cli.Command{
	Name:      "info",
	Usage:     "Displays a summary of a .d datafile",
	ArgsUsage: "<datafile.d>",
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 {
			return cli.Exit("Error: <datafile.d> argument is required.", 1)
		}
		path := c.Args().Get(0)

		data, err := reader.Open(path)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error reading %s: %v", path, err), 1)
		}

		headerColor := color.New(color.FgMagenta, color.Bold).SprintFunc()
		labelColor := color.New(color.FgCyan).SprintFunc()

		fmt.Println(headerColor(path))

		md := data.Metadata
		if md.SampleInfo != nil {
			if field, ok := md.SampleInfo.Field("Sample Name"); ok {
				fmt.Printf("%s %s\n", labelColor("Sample:"), field.Value)
			}
		}
		if md.Contents != nil {
			fmt.Printf("%s %s\n", labelColor("Instrument:"), md.Contents.InstrumentName)
			if !md.Contents.AcquiredTime.IsZero() {
				fmt.Printf("%s %s\n", labelColor("Acquired:"), md.Contents.AcquiredTime.Format("2006-01-02 15:04:05"))
			}
		}
		if md.AcqMethod != nil && md.AcqMethod.Name != "" {
			fmt.Printf("%s %s\n", labelColor("Method:"), md.AcqMethod.Name)
		}
		fmt.Println()

		data.Info(os.Stdout)
		return nil
	},
}
