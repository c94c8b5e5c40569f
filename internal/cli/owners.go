package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/sqlite"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func newOwnersCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "owners <script.yaml|-> <phone>",
		Short: "List the records holding a phone number",
		Long: `Run a script, then print the name of every record that holds exactly
the given phone number, in directory order.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			phone, err := types.NewPhone(args[1])
			if err != nil {
				return err
			}
			sc, err := loadScript(cmd, args[0])
			if err != nil {
				return err
			}
			dir, err := s.runScript(cmd, sc, io.Discard)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			snap, err := sqlite.Open(ctx)
			if err != nil {
				return err
			}
			defer snap.Close()

			if err := snap.Load(ctx, dir); err != nil {
				return fmt.Errorf("load snapshot: %w", err)
			}
			records, phones, err := snap.Counts(ctx)
			if err != nil {
				return err
			}
			s.log().Debug("snapshot loaded", "records", records, "phones", phones)

			names, err := snap.Owners(ctx, phone.String())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if s.jsonOutput() {
				return json.NewEncoder(out).Encode(names)
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
