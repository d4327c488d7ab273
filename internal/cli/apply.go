package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/arena/pkg/court"
	"github.com/matzehuels/arena/pkg/design"
	"github.com/matzehuels/arena/pkg/edit"
	arenaio "github.com/matzehuels/arena/pkg/io"
)

// applyCommand creates the apply command for design files.
func (c *CLI) applyCommand() *cobra.Command {
	var output string
	var initPath string

	cmd := &cobra.Command{
		Use:   "apply [design.yaml|design.toml]",
		Short: "Build a court from a design file",
		Long: `Build a court from a YAML or TOML design file: the generator inputs
plus an ordered list of edit ops. Ops the constraint engine rejects leave the
court unchanged and are reported with the reason.

Use --init to write a starter design file.`,
		Example: `  arena apply club.yaml -o club.json
  arena apply --init club.toml`,
		Args: func(cmd *cobra.Command, args []string) error {
			if initPath != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if initPath != "" {
				return writeStarterDesign(initPath)
			}
			return c.runApply(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the built court as JSON to this file")
	cmd.Flags().StringVar(&initPath, "init", "", "write a starter design file and exit")

	return cmd
}

func (c *CLI) runApply(ctx context.Context, path, output string) error {
	prog := newProgress(loggerFromContext(ctx))
	d, err := design.Load(path)
	if err != nil {
		return err
	}
	res, err := d.Build()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Applied %d ops from %s", len(d.Ops), path))

	applied := len(d.Ops) - len(res.Rejected)
	printCourt(res.Court)
	printStats(countSections(res.Court), 0, false)
	printInfo("%d of %d ops applied", applied, len(d.Ops))
	for _, r := range res.Rejected {
		printWarning("op %d %s: %s", r.Index+1, r.Op, r.Reason)
	}

	if output != "" {
		if err := arenaio.ExportJSON(res.Court, output); err != nil {
			return err
		}
		printFile(output)
		printNextStep("Draw it", fmt.Sprintf("%s render %s", appName, output))
	}
	return nil
}

// starterDesign is written by apply --init.
func starterDesign() *design.Design {
	return &design.Design{
		Name:       "club",
		Width:      10,
		Length:     15,
		EndHeight:  3,
		SideHeight: 3,
		Ops: []edit.Op{
			{Kind: edit.OpToggleGate, Wall: court.Side1, Index: 3},
			{Kind: edit.OpToggleMiniGoal, Wall: court.Side2, Index: 3},
			{Kind: edit.OpSetWallHeight, Wall: court.End2, Height: 4},
		},
	}
}

func writeStarterDesign(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := starterDesign().Save(path); err != nil {
		return err
	}
	printSuccess("Wrote starter design")
	printFile(path)
	printNextStep("Build it", fmt.Sprintf("%s apply %s", appName, path))
	return nil
}
