package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

func writeReport(w io.Writer, format string, rep report) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return writeTable(w, rep)
	}
}

func writeTable(w io.Writer, rep report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		name  string
		value any
	}{
		{"Signal", rep.Signal.Kind},
		{"Sample rate [Hz]", rep.Signal.SampleRate},
		{"Samples", rep.Signal.Samples},
		{"Duration [s]", rep.Signal.Duration},
		{"Energy", rep.Time.Energy},
		{"Power", rep.Time.Power},
		{"RMS", rep.Time.RMS},
		{"RMS [dB]", rep.Time.RMSdB},
		{"Peak", rep.Time.Peak},
		{"Crest factor", rep.Time.CrestFactor},
		{"Zero crossings", rep.Time.ZeroCrossings},
		{"Backend", rep.Spectrum.Backend},
		{"Bins", rep.Spectrum.Bins},
		{"Bin spacing [Hz]", rep.Spectrum.BinSpacing},
		{"Centroid [Hz]", rep.Spectrum.Centroid},
		{"Rolloff [Hz]", rep.Spectrum.Rolloff},
		{"Flatness", rep.Spectrum.Flatness},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%v\n", r.name, formatValue(r.value)); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
	}
	if len(rep.Spectrum.Peaks) > 0 {
		if _, err := fmt.Fprintf(tw, "\nBin\tFrequency [Hz]\tMagnitude\n---\t--------------\t---------\n"); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
		for _, p := range rep.Spectrum.Peaks {
			if _, err := fmt.Fprintf(tw, "%d\t%.4g\t%.6g\n", p.Bin, p.Frequency, p.Magnitude); err != nil {
				return fmt.Errorf("write table: %w", err)
			}
		}
	}
	return tw.Flush()
}

func formatValue(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.6g", f)
	}
	return fmt.Sprint(v)
}
