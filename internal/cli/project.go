package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/npsgo/pension-calculator/internal/calculation"
	"github.com/npsgo/pension-calculator/internal/config"
	"github.com/npsgo/pension-calculator/internal/output"
)

func newProjectCmd(debug *bool) *cobra.Command {
	var (
		inputFile string
		format    string
		outFile   string
		save      bool
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Run a projection from a saver profile file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parser := config.NewInputParser()
			profile, err := parser.LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			engine := calculation.NewProjectionEngine()
			engine.SetLogger(newLogger(*debug))

			report, err := buildReport(engine, profile.ToProjectionInput(time.Now()))
			if err != nil {
				return err
			}

			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown format %q (available: %s)",
					format, strings.Join(output.AvailableFormatterNames(), ", "))
			}

			if save {
				name, err := output.WriteFormatted(formatter, report, output.FileExtension(formatter))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", name)
				return nil
			}

			data, err := formatter.Format(report)
			if err != nil {
				return err
			}

			if outFile != "" {
				if err := os.WriteFile(outFile, data, 0644); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outFile)
				return nil
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "saver profile YAML file")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write output to file instead of stdout")
	cmd.Flags().BoolVar(&save, "save", false, "write output to a timestamped file in the current directory")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
