package reader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chromatools/agd/internal/core/datafile"
)

// WriteCSV writes the data as a pair of CSV files, one scan per row:
// <base>.I.csv holds intensities and <base>.mz.csv holds masses. Parent
// directories are created when needed.
func (d *Data) WriteCSV(base string) error {
	prepared, err := datafile.PrepareFilepath(base)
	if err != nil {
		return err
	}

	if err := d.writeScanCSV(prepared+".I.csv", func(s int, i int) float64 {
		return d.Scans[s].Intensities[i]
	}); err != nil {
		return err
	}
	return d.writeScanCSV(prepared+".mz.csv", func(s int, i int) float64 {
		return d.Scans[s].Masses[i]
	})
}

func (d *Data) writeScanCSV(path string, value func(scan, point int) float64) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	w := bufio.NewWriter(file)
	for s := range d.Scans {
		fields := make([]string, len(d.Scans[s].Masses))
		for i := range fields {
			fields[i] = strconv.FormatFloat(value(s, i), 'f', 4, 64)
		}
		if _, err := w.WriteString(strings.Join(fields, ",") + "\n"); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}

// WriteIntensitiesStream writes every intensity value, scan by scan, one
// value per line.
func (d *Data) WriteIntensitiesStream(path string) error {
	prepared, err := datafile.PrepareFilepath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(prepared)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", prepared, err)
	}
	defer func() { _ = file.Close() }()

	w := bufio.NewWriter(file)
	for _, scan := range d.Scans {
		for _, intensity := range scan.Intensities {
			if _, err := fmt.Fprintf(w, "%8.4f\n", intensity); err != nil {
				return fmt.Errorf("failed to write %s: %w", prepared, err)
			}
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", prepared, err)
	}
	return file.Close()
}
