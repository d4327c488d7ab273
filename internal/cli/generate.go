package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/arena/pkg/court"
	arenaio "github.com/matzehuels/arena/pkg/io"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var flags courtFlags
	var output string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a court layout from its dimensions",
		Long: `Generate the four walls of a court. Even widths get curved corners,
odd widths right-angle corners. Heights default to the [defaults] section of
the config file.`,
		Example: `  arena generate -W 10 -L 15
  arena generate -W 11 -L 16 --end-height 2 --side-height 2 -o court.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.standalone = false
			return c.runGenerate(cmd.Context(), &flags, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the court as JSON to this file")
	_ = cmd.Flags().MarkHidden("standalone")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("length")

	return cmd
}

// standaloneCommand creates the standalone command.
func (c *CLI) standaloneCommand() *cobra.Command {
	var flags courtFlags
	var output string

	cmd := &cobra.Command{
		Use:   "standalone",
		Short: "Generate a standalone end wall (a single goal)",
		Long: `Generate a standalone end wall: one goal, 3m wide. Grow it with
append_section and append_curved_corner ops in a design file (arena apply) or
interactively (arena edit --standalone).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.standalone = true
			return c.runGenerate(cmd.Context(), &flags, output)
		},
	}

	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the court as JSON to this file")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, flags *courtFlags, output string) error {
	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	c.warnLargeCourt(flags)
	prog := newProgress(loggerFromContext(ctx))
	ct, _, hit, err := runner.BuildCourtWithCacheInfo(ctx, flags.options(c.cfg))
	if err != nil {
		return err
	}
	prog.done("Generated " + ct.String())

	printCourt(ct)
	printStats(countSections(ct), 0, hit)

	if output != "" {
		if err := arenaio.ExportJSON(ct, output); err != nil {
			return err
		}
		printFile(output)
		printNextStep("Bill of materials", fmt.Sprintf("%s bom %s", appName, output))
	}
	return nil
}

// printCourt prints one line per wall.
func printCourt(c *court.Court) {
	printSuccess("%s", StyleTitle.Render(c.String()))
	for _, id := range c.WallIDs() {
		w := c.Sections(id)
		printKeyValue(id.Label(), fmt.Sprintf("%s  %s", w.String(), StyleDim.Render(fmt.Sprintf("(%gm)", w.Span()))))
	}
}

func countSections(c *court.Court) int {
	n := 0
	for _, id := range c.WallIDs() {
		n += len(c.Sections(id))
	}
	return n
}
