package commands

import (
	"github.com/spf13/cobra"
	"github.com/spokebuild/spoke/internal/app"
)

func (c *CLI) newConfigureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Write the bazelrc fragment without building anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.assembleOptions(cmd.Flags())
			if err != nil {
				return err
			}
			return c.app.Run(cmd.Context(), opts, app.RunOptions{ConfigureOnly: true})
		},
	}
	addBuildFlags(cmd.Flags())
	return cmd
}
