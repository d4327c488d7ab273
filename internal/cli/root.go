package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/arena/pkg/buildinfo"
)

// SetVersion sets the version information displayed by --version.
// The main package calls this with values injected via ldflags.
func SetVersion(v, c, d string) {
	buildinfo.Version = v
	buildinfo.Commit = c
	buildinfo.Date = d
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Arena lays out games enclosures and counts their parts",
		Long: `Arena generates the wall layout of a multi-use games area from its
dimensions, lets you edit it (gates, chicanes, mini goals, heights) and
produces the bill of materials and plan drawings.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/arena/config.toml)")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.standaloneCommand())
	root.AddCommand(c.applyCommand())
	root.AddCommand(c.bomCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
