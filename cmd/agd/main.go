// Declare the package name. The main package is special in Go,
// it's where the program execution starts.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/chromatools/agd/internal/cli/export"
	"github.com/chromatools/agd/internal/cli/info"
	"github.com/chromatools/agd/internal/cli/metadatacmd"
	"github.com/chromatools/agd/internal/cli/self"
	"github.com/chromatools/agd/internal/cli/validate"
)

// The main function, where the program execution begins.
func main() {
	app := &cli.App{
		Name:    "agd",
		Usage:   "A toolkit for Agilent MassHunter .d datafiles",
		Version: "v0.1.0",
		Action: func(c *cli.Context) error {
			// Default action if no command is specified
			_ = cli.ShowAppHelp(c)
			return nil
		},
		Commands: []*cli.Command{
			info.InfoCmd,
			metadatacmd.MetadataCmd,
			export.ExportCmd,
			validate.ValidateCmd,
			self.NewSelfCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
