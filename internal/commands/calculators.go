package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChicagoDave/takeoff/internal/prompts"
	"github.com/ChicagoDave/takeoff/pkg/materials"
	"github.com/ChicagoDave/takeoff/pkg/spec"
)

// bindElement registers the element geometry flags on cmd.
func bindElement(cmd *cobra.Command, def *spec.ElementDef) {
	f := cmd.Flags()
	f.StringVar(&def.Kind, "kind", "", "element kind: beam, column, pier, slab or footing")
	f.Float64Var(&def.Length, "length", 0, "length in meters (beam, column, pier, slab)")
	f.Float64Var(&def.Width, "width", 0, "width in meters (beam, column, pier, slab)")
	f.Float64Var(&def.Height, "height", 0, "height in meters (beam, column, pier, footing)")
	f.Float64Var(&def.Thickness, "thickness", 0, "thickness in meters (slab)")
	f.Float64Var(&def.Side1, "side1", 0, "first side in meters (footing)")
	f.Float64Var(&def.Side2, "side2", 0, "second side in meters (footing)")
}

// element converts def after enforcing the entry minimum on every
// dimension its kind uses.
func element(def spec.ElementDef) (materials.Element, error) {
	if def.Kind == "" {
		return nil, errors.New("--kind is required")
	}
	el, err := def.Element()
	if err != nil {
		return nil, err
	}
	for _, d := range def.Dimensions() {
		if err := atLeast(d.Name, d.Value, materials.MinDimension); err != nil {
			return nil, err
		}
	}
	return el, nil
}

func atLeast(flag string, v, min float64) error {
	if !(v >= min) {
		return fmt.Errorf("%w: --%s %g is below the minimum of %g", materials.ErrInvalidInput, flag, v, min)
	}
	return nil
}

func (a *app) concreteCmd() *cobra.Command {
	var (
		def    spec.ElementDef
		volume float64
		grade  string
	)

	cmd := &cobra.Command{
		Use:   "concrete",
		Short: "Cement, sand, gravel and water for a volume of concrete",
		Example: `  takeoff concrete --volume 2.5 --grade "200 kg/cm²"
  takeoff concrete --kind slab --length 5 --width 4 --thickness 0.1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if def.Kind != "" {
				el, err := element(def)
				if err != nil {
					return err
				}
				if volume, err = materials.Volume(el); err != nil {
					return err
				}
			} else if !cmd.Flags().Changed("volume") {
				return errors.New("give either --volume or --kind with its dimensions")
			}

			res, err := materials.Concrete(volume, materials.Grade(grade))
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			if res.Fallback {
				prompts.PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("unknown grade %q, using %s", grade, res.Grade))
			}
			prompts.PrintResult(cmd.OutOrStdout(), "Concrete "+string(res.Grade), concreteFields(res))
			return nil
		},
	}

	bindElement(cmd, &def)
	cmd.Flags().Float64Var(&volume, "volume", 0, "volume in cubic meters, instead of an element")
	cmd.Flags().StringVar(&grade, "grade", string(materials.DefaultGrade), "concrete strength grade")
	return cmd
}

func (a *app) steelCmd() *cobra.Command {
	var (
		def     spec.ElementDef
		gauge   int
		bars    int
		spacing float64
	)

	cmd := &cobra.Command{
		Use:     "steel",
		Short:   "Reinforcing steel length and weight for an element",
		Example: `  takeoff steel --kind column --length 3 --width 0.3 --height 0.5 --gauge 4 --bars 4 --spacing 20`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			el, err := element(def)
			if err != nil {
				return err
			}
			if bars < materials.MinBars {
				return fmt.Errorf("%w: --bars %d is below the minimum of %d", materials.ErrInvalidInput, bars, materials.MinBars)
			}
			if err := atLeast("spacing", spacing, materials.MinSpacingCm); err != nil {
				return err
			}

			res, err := materials.Steel(el, materials.Rebar{
				Gauge:     materials.Gauge(gauge),
				Bars:      bars,
				SpacingCm: spacing,
			})
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			if res.UnknownGauge {
				prompts.PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("unknown gauge #%d, weight not computed", gauge))
			}
			prompts.PrintResult(cmd.OutOrStdout(), fmt.Sprintf("Steel #%d, %s", gauge, el.Kind()), steelFields(res))
			return nil
		},
	}

	bindElement(cmd, &def)
	cmd.Flags().IntVar(&gauge, "gauge", 4, "bar gauge (3, 4, 5, 6 or 8)")
	cmd.Flags().IntVar(&bars, "bars", 4, "number of longitudinal bars")
	cmd.Flags().Float64Var(&spacing, "spacing", 20, "stirrup spacing in centimeters")
	return cmd
}

func (a *app) excavationCmd() *cobra.Command {
	var (
		work                  string
		length, width, height float64
	)

	cmd := &cobra.Command{
		Use:     "excavation",
		Short:   "Volume of an excavation or demolition",
		Example: `  takeoff excavation --work "slab demolition" --length 2 --width 3 --height 1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, d := range []spec.Dimension{{Name: "length", Value: length}, {Name: "width", Value: width}, {Name: "height", Value: height}} {
				if err := atLeast(d.Name, d.Value, materials.MinDimension); err != nil {
					return err
				}
			}
			v, err := materials.Excavation(length, width, height)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"work": work, "volume_m3": v})
			}
			prompts.PrintResult(cmd.OutOrStdout(), "Excavation", excavationFields(materials.Work(work), v))
			return nil
		},
	}

	cmd.Flags().StringVar(&work, "work", string(materials.WorkExcavation), "work label: excavation, floor demolition or slab demolition")
	cmd.Flags().Float64Var(&length, "length", 0, "length in meters")
	cmd.Flags().Float64Var(&width, "width", 0, "width in meters")
	cmd.Flags().Float64Var(&height, "height", 0, "depth or height in meters")
	return cmd
}

func (a *app) blockCmd() *cobra.Command {
	var length, height float64

	cmd := &cobra.Command{
		Use:     "block",
		Short:   "Blocks and mortar joint for a wall",
		Example: `  takeoff block --length 4 --height 2`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := atLeast("length", length, materials.MinDimension); err != nil {
				return err
			}
			if err := atLeast("height", height, materials.MinDimension); err != nil {
				return err
			}
			res, err := materials.Block(length, height)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), struct {
					materials.BlockResult
					Pieces int `json:"pieces"`
				}{res, res.Pieces()})
			}
			prompts.PrintResult(cmd.OutOrStdout(), "Block wall", blockFields(res))
			return nil
		},
	}

	cmd.Flags().Float64Var(&length, "length", 0, "wall length in meters")
	cmd.Flags().Float64Var(&height, "height", 0, "wall height in meters")
	return cmd
}

func (a *app) paintCmd() *cobra.Command {
	var length, width float64

	cmd := &cobra.Command{
		Use:     "paint",
		Short:   "Liters of paint for a surface",
		Example: `  takeoff paint --length 5 --width 4`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := atLeast("length", length, materials.MinDimension); err != nil {
				return err
			}
			if err := atLeast("width", width, materials.MinDimension); err != nil {
				return err
			}
			res, err := materials.Paint(length, width)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			prompts.PrintResult(cmd.OutOrStdout(), "Paint", paintFields(res))
			return nil
		},
	}

	cmd.Flags().Float64Var(&length, "length", 0, "surface length in meters")
	cmd.Flags().Float64Var(&width, "width", 0, "surface width in meters")
	return cmd
}
