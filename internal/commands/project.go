package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ChicagoDave/takeoff/internal/export"
	"github.com/ChicagoDave/takeoff/pkg/cost"
	"github.com/ChicagoDave/takeoff/pkg/spec"
	"github.com/ChicagoDave/takeoff/pkg/validation"
)

var errInvalidTakeoff = errors.New("takeoff has validation errors")

func projectDir(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}

// loadAndValidate loads the takeoff and runs schema validation.
func loadAndValidate(dir string) (*spec.Takeoff, *validation.Report, error) {
	t, err := spec.LoadProject(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading takeoff: %w", err)
	}
	return t, validation.Validate(t), nil
}

// loadEstimate loads, validates and estimates a project. An invalid
// takeoff prints its report and returns errInvalidTakeoff.
func loadEstimate(cmd *cobra.Command, dir string) (*cost.Report, error) {
	t, report, err := loadAndValidate(dir)
	if err != nil {
		return nil, err
	}
	if !report.Valid {
		printValidationReport(cmd.ErrOrStderr(), report)
		return nil, fmt.Errorf("%w; fix before estimating", errInvalidTakeoff)
	}
	est, err := cost.Estimate(t)
	if err != nil {
		return nil, fmt.Errorf("estimating: %w", err)
	}
	return est, nil
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-dir]",
		Short: "Validate a takeoff.yaml without estimating it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, report, err := loadAndValidate(projectDir(args))
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				printValidationReport(cmd.OutOrStdout(), report)
			}
			if !report.Valid {
				return errInvalidTakeoff
			}
			return nil
		},
	}
}

func (a *app) estimateCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "estimate [project-dir]",
		Short: "Compute material quantities and costs for a takeoff project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := loadEstimate(cmd, projectDir(args))
			if err != nil {
				return err
			}
			if asJSON || a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), est)
			}
			printEstimate(cmd.OutOrStdout(), est)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the estimate as JSON")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var xlsxPath, pdfPath string

	cmd := &cobra.Command{
		Use:     "export [project-dir]",
		Short:   "Write the estimate as an Excel workbook and/or a PDF",
		Example: `  takeoff export examples/casa-norte --xlsx casa-norte.xlsx --pdf casa-norte.pdf`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if xlsxPath == "" && pdfPath == "" {
				return errors.New("give --xlsx, --pdf or both")
			}
			est, err := loadEstimate(cmd, projectDir(args))
			if err != nil {
				return err
			}
			if xlsxPath != "" {
				if err := writeFile(xlsxPath, func(f *os.File) error { return export.WriteXLSX(est, f) }); err != nil {
					return fmt.Errorf("writing %s: %w", xlsxPath, err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", xlsxPath)
			}
			if pdfPath != "" {
				if err := writeFile(pdfPath, func(f *os.File) error { return export.WritePDF(est, f) }); err != nil {
					return fmt.Errorf("writing %s: %w", pdfPath, err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", pdfPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Excel output file")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "PDF output file")
	return cmd
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
