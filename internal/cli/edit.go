package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	arenaio "github.com/matzehuels/arena/pkg/io"
)

// editCommand creates the interactive editor command.
func (c *CLI) editCommand() *cobra.Command {
	var flags courtFlags
	var output string

	cmd := &cobra.Command{
		Use:   "edit [court.json|design.yaml]",
		Short: "Edit a court interactively",
		Long: `Open a court in the terminal editor. Select a section and change its
height, turn 2m panels into gates, chicanes or mini goals, or set a whole wall
height. Standalone end walls can grow panels and curved corners at either end.

Edits the constraint engine rejects are explained in the status line. Press w
to save and quit.`,
		Example: `  arena edit court.json
  arena edit -W 10 -L 15 -o court.json
  arena edit --standalone -o wall.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(cmd.Context(), args, &flags, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "where w saves the court (default: the input court file, or <name>.json)")

	return cmd
}

func (c *CLI) runEdit(ctx context.Context, args []string, flags *courtFlags, output string) error {
	src, err := c.loadCourt(ctx, args, flags)
	if err != nil {
		return err
	}
	if output == "" {
		output = editOutputPath(args, src.name)
	}

	p := tea.NewProgram(NewEditorModel(src.court), tea.WithContext(ctx), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	m, ok := final.(EditorModel)
	if !ok || !m.Save {
		if ok && m.Dirty {
			printWarning("Quit without saving")
		}
		return nil
	}

	if err := arenaio.ExportJSON(m.Court, output); err != nil {
		return err
	}
	printSuccess("Saved %s", m.Court.String())
	printFile(output)
	return nil
}

// editOutputPath is where the editor saves by default: the court file itself
// when one was opened, otherwise <name>.json next to the input.
func editOutputPath(args []string, name string) string {
	if len(args) == 0 {
		return name + ".json"
	}
	in := args[0]
	if strings.EqualFold(filepath.Ext(in), ".json") {
		return in
	}
	return filepath.Join(filepath.Dir(in), name+".json")
}
