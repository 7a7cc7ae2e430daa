// Package validate implements the 'validate' command: structural validation
// of a data-package manifest.
package validate

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/chromatools/agd/internal/core/fetch"
	"github.com/chromatools/agd/internal/core/manifest"
	"github.com/chromatools/agd/internal/core/source"
)

// ValidateCmd defines the structure for the 'validate' command.
var ValidateCmd = &cli.Command{
	Name:      "validate",
	Usage:     "Validates a data-package manifest",
	ArgsUsage: "<manifest path|url|github:owner/repo/file@ref>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "root",
			Aliases: []string{"r"},
			Usage:   "Package root that file references resolve against (defaults to the manifest's directory; remote manifests skip file checks)",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose output",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 {
			return cli.Exit("Error: <manifest> argument is required.", 1)
		}
		ref := c.Args().Get(0)
		verbose := c.Bool("verbose")

		loc, err := source.Resolve(ref)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error resolving manifest source %q: %v", ref, err), 1)
		}

		var m *manifest.Manifest
		rootDir := c.String("root")

		if loc.IsRemote() {
			if verbose {
				fmt.Printf("Downloading manifest from %s\n", loc.RawURL)
			}
			data, err := fetch.Download(loc.RawURL)
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error downloading manifest: %v", err), 1)
			}
			m, err = manifest.Parse(data)
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error parsing manifest from %s: %v", loc.RawURL, err), 1)
			}
			// Remote manifests have no package tree to check against
			// unless --root points at a local copy.
		} else {
			m, err = manifest.LoadFile(loc.Path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error loading manifest %s: %v", loc.Path, err), 1)
			}
			if rootDir == "" {
				rootDir = filepath.Dir(loc.Path)
			}
		}

		problems := m.Validate(rootDir)

		okColor := color.New(color.FgGreen, color.Bold).SprintFunc()
		failColor := color.New(color.FgRed, color.Bold).SprintFunc()

		if len(problems) == 0 {
			name := ""
			if m.Package != nil {
				name = fmt.Sprintf(" (%s %s)", m.Package.Name, m.Package.Version)
			}
			fmt.Printf("%s %s%s\n", okColor("OK"), ref, name)
			return nil
		}

		fmt.Printf("%s %s: %d problem(s)\n", failColor("INVALID"), ref, len(problems))
		for _, p := range problems {
			fmt.Printf("  - %s\n", p)
		}
		return cli.Exit("", 1)
	},
}
