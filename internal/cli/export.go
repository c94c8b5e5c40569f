package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/jsonl"
)

func newExportCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "export <script.yaml|->",
		Short: "Run a script and write the directory as JSON Lines",
		Long: `Run the steps of a YAML script against an empty directory and write one
JSON object per record to standard output. Output of show and find-phone
steps is suppressed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScript(cmd, args[0])
			if err != nil {
				return err
			}
			dir, err := s.runScript(cmd, sc, io.Discard)
			if err != nil {
				return err
			}
			return jsonl.Write(cmd.OutOrStdout(), dir)
		},
	}
}
