package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/script"
)

func newDemoCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demonstration",
		Long: `Build John and Jane, print both, change John's 1234567890 to
1112223333, print John again, look up John's 5555555555 and delete Jane.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := script.Demo()
			if err != nil {
				return fmt.Errorf("load demo: %w", err)
			}
			_, err = s.runScript(cmd, sc, cmd.OutOrStdout())
			return err
		},
	}
}
