// Package metadatacmd implements the 'metadata' command: dumps the parsed
// XML metadata documents of a .d datafile.
package metadatacmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/chromatools/agd/internal/core/datafile"
)

// docNames lists the selectable document names for the --doc flag.
var docNames = []string{
	"contents", "sample-info", "devices", "device-config",
	"mass-cal", "time-segments", "actuals", "acq-method",
}

// MetadataCmd defines the structure for the 'metadata' command.
var MetadataCmd = &cli.Command{
	Name:      "metadata",
	Usage:     "Displays the acquisition metadata of a .d datafile",
	ArgsUsage: "<datafile.d>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "doc",
			Aliases: []string{"d"},
			Usage:   "Show a single document (" + strings.Join(docNames, ", ") + ")",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 {
			return cli.Exit("Error: <datafile.d> argument is required.", 1)
		}
		path := c.Args().Get(0)

		md, err := datafile.ExtractMetadata(path)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error extracting metadata from %s: %v", path, err), 1)
		}

		selected := c.String("doc")
		shown := 0
		for _, name := range docNames {
			if selected != "" && selected != name {
				continue
			}
			if printDoc(name, md) {
				shown++
			}
		}
		if selected != "" && shown == 0 {
			return cli.Exit(fmt.Sprintf("Error: document %q not present in %s (or unknown; expected one of: %s)",
				selected, path, strings.Join(docNames, ", ")), 1)
		}
		return nil
	},
}

// printDoc prints one metadata document; it reports whether the document was
// present.
func printDoc(name string, md *datafile.Metadata) bool {
	header := color.New(color.FgCyan, color.Bold).SprintFunc()
	dim := color.New(color.FgHiBlack).SprintFunc()

	switch name {
	case "contents":
		if md.Contents == nil {
			return false
		}
		c := md.Contents
		fmt.Println(header("Contents") + dim(fmt.Sprintf(" (version %d)", c.Version)))
		fmt.Printf("  Acquired:           %s\n", c.AcquiredTime.Format("2006-01-02 15:04:05 -07:00"))
		fmt.Printf("  Status:             %s\n", c.AcqStatus)
		fmt.Printf("  Instrument:         %s\n", c.InstrumentName)
		fmt.Printf("  Locked mode:        %t\n", c.LockedMode)
		fmt.Printf("  Software version:   %s\n", c.AcqSoftwareVersion)
	case "sample-info":
		if md.SampleInfo == nil {
			return false
		}
		fmt.Println(header("Sample info") + dim(fmt.Sprintf(" (version %d)", md.SampleInfo.Version)))
		for _, f := range md.SampleInfo.Fields {
			value := f.Value
			if f.Units != "" {
				value += " " + f.Units
			}
			fmt.Printf("  %-24s %s\n", f.DisplayName+":", value)
		}
	case "devices":
		if md.Devices == nil {
			return false
		}
		fmt.Println(header("Devices") + dim(fmt.Sprintf(" (version %d)", md.Devices.Version)))
		for _, d := range md.Devices.Devices {
			fmt.Printf("  [%d] %s (%s, model %s, serial %s) stores %s\n",
				d.DeviceID, d.DisplayName, d.Type, d.ModelNumber, d.SerialNumber, d.StoredDataType)
		}
	case "device-config":
		if md.DeviceConfigInfo == nil {
			return false
		}
		fmt.Println(header("Device configuration"))
		for _, dev := range md.DeviceConfigInfo.Devices {
			fmt.Printf("  [%d] %s\n", dev.DeviceID, dev.DisplayName)
			for _, p := range md.DeviceConfigInfo.ParametersFor(dev.DeviceID) {
				value := p.Value
				if p.Units != "" {
					value += " " + p.Units
				}
				fmt.Printf("      %-20s %s\n", p.ResourceName+":", value)
			}
		}
	case "mass-cal":
		if md.DefaultMassCal == nil {
			return false
		}
		fmt.Println(header("Default mass calibration") + dim(fmt.Sprintf(" (version %d)", md.DefaultMassCal.Version)))
		for _, cal := range md.DefaultMassCal.Calibrations {
			fmt.Printf("  Calibration %d (device %d):\n", cal.CalibrationID, cal.DeviceID)
			for _, step := range cal.Steps {
				fmt.Printf("    Step %d: %s %v\n", step.Number, step.Formula, step.Coefficients)
			}
		}
	case "time-segments":
		if md.TimeSegments == nil {
			return false
		}
		fmt.Println(header("Time segments") + dim(fmt.Sprintf(" (version %d, %d scans total)",
			md.TimeSegments.Version, md.TimeSegments.TotalScans())))
		for _, seg := range md.TimeSegments.Segments {
			fmt.Printf("  [%d] %.3f min -- %.3f min, %d scans\n",
				seg.TimeSegmentID, seg.StartTime, seg.EndTime, seg.NumOfScans)
		}
	case "actuals":
		if md.ActualDefs == nil {
			return false
		}
		fmt.Println(header("Actuals") + dim(fmt.Sprintf(" (version %d)", md.ActualDefs.Version)))
		for _, a := range md.ActualDefs.Actuals {
			unit := a.Unit
			if unit != "" {
				unit = " [" + unit + "]"
			}
			fmt.Printf("  [%d] %s%s (%s)\n", a.ActualID, a.DisplayName, unit, a.Category)
		}
	case "acq-method":
		if md.AcqMethod == nil {
			return false
		}
		m := md.AcqMethod
		fmt.Println(header("Acquisition method") + dim(fmt.Sprintf(" (version %d)", m.Version)))
		fmt.Printf("  Name:     %s\n", m.Name)
		fmt.Printf("  Filename: %s\n", m.Filename)
		for _, dev := range m.Devices {
			fmt.Printf("  Device %s:\n", dev.Name)
			for _, p := range dev.Parameters {
				value := p.Value
				if p.Units != "" {
					value += " " + p.Units
				}
				fmt.Printf("    %-20s %s\n", p.DisplayName+":", value)
			}
		}
	default:
		return false
	}
	fmt.Println()
	return true
}
