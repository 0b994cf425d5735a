package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/ChicagoDave/takeoff/internal/prompts"
	"github.com/ChicagoDave/takeoff/pkg/materials"
)

func (a *app) interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Pick a calculator and fill in its form, repeatedly",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd.OutOrStdout())
		},
	}
}

func runInteractive(out io.Writer) error {
	for {
		choice := prompts.CalcConcrete
		if err := prompts.RunCalculatorSelect(&choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if choice == prompts.CalcQuit {
			return nil
		}

		err := runCalculator(out, choice)
		switch {
		case errors.Is(err, huh.ErrUserAborted):
			// back to the menu
		case errors.Is(err, materials.ErrInvalidInput):
			prompts.PrintWarning(out, err.Error())
		case err != nil:
			return err
		}
		_, _ = fmt.Fprintln(out)
	}
}

func runCalculator(out io.Writer, choice string) error {
	switch choice {
	case prompts.CalcConcrete:
		el, grade, err := prompts.RunConcreteForm()
		if err != nil {
			return err
		}
		v, err := materials.Volume(el)
		if err != nil {
			return err
		}
		res, err := materials.Concrete(v, grade)
		if err != nil {
			return err
		}
		prompts.PrintResult(out, "Concrete "+string(res.Grade), concreteFields(res))

	case prompts.CalcSteel:
		el, rebar, err := prompts.RunSteelForm()
		if err != nil {
			return err
		}
		res, err := materials.Steel(el, rebar)
		if err != nil {
			return err
		}
		prompts.PrintResult(out, fmt.Sprintf("Steel #%d, %s", rebar.Gauge, el.Kind()), steelFields(res))

	case prompts.CalcExcavation:
		work, l, w, h, err := prompts.RunExcavationForm()
		if err != nil {
			return err
		}
		v, err := materials.Excavation(l, w, h)
		if err != nil {
			return err
		}
		prompts.PrintResult(out, "Excavation", excavationFields(work, v))

	case prompts.CalcBlock:
		l, h, err := prompts.RunBlockForm()
		if err != nil {
			return err
		}
		res, err := materials.Block(l, h)
		if err != nil {
			return err
		}
		prompts.PrintResult(out, "Block wall", blockFields(res))

	case prompts.CalcPaint:
		l, w, err := prompts.RunPaintForm()
		if err != nil {
			return err
		}
		res, err := materials.Paint(l, w)
		if err != nil {
			return err
		}
		prompts.PrintResult(out, "Paint", paintFields(res))

	default:
		return fmt.Errorf("unknown calculator %q", choice)
	}
	return nil
}
