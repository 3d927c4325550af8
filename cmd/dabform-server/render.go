package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dabform/dabform/internal/platform/f1000"
)

// bundleFile is the YAML shape accepted by `render`. Each section uses the
// same keys the PDF layout reads.
type bundleFile struct {
	Report    map[string]any `yaml:"report"`
	Patient   map[string]any `yaml:"patient"`
	Clinician map[string]any `yaml:"clinician"`
	Employer  map[string]any `yaml:"employer"`
	Carrier   map[string]any `yaml:"carrier"`
	Insurer   map[string]any `yaml:"insurer"`
}

func loadBundle(r io.Reader) (f1000.Bundle, error) {
	var bf bundleFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&bf); err != nil && err != io.EOF {
		return f1000.Bundle{}, fmt.Errorf("decoding bundle: %w", err)
	}
	if bf.Report == nil || bf.Patient == nil {
		return f1000.Bundle{}, fmt.Errorf("bundle needs at least report and patient sections")
	}
	return f1000.Bundle{
		Report:    f1000.Record(bf.Report),
		Patient:   f1000.Record(bf.Patient),
		Clinician: f1000.Record(bf.Clinician),
		Employer:  f1000.Record(bf.Employer),
		Carrier:   f1000.Record(bf.Carrier),
		Insurer:   f1000.Record(bf.Insurer),
	}, nil
}

func renderCmd() *cobra.Command {
	var input, variant, out string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a report PDF from a YAML bundle without a database",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := f1000.ParseVariant(variant)
			if err != nil {
				return err
			}
			in, err := os.Open(input)
			if err != nil {
				return err
			}
			defer in.Close()

			b, err := loadBundle(in)
			if err != nil {
				return err
			}
			doc, err := f1000.Render(b, v)
			if err != nil {
				return err
			}

			if out == "" {
				out = f1000.Filename(b.Patient.Text("nachname"), b.Patient.Text("vorname"), v)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if _, err := io.Copy(f, doc); err != nil {
				f.Close()
				return fmt.Errorf("writing %s: %w", out, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", out, v)
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "YAML bundle file")
	cmd.Flags().StringVar(&variant, "variant", "uv", "uv (full) or kk (reduced)")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default: derived from patient name)")
	cmd.MarkFlagRequired("input")
	return cmd
}
