package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sourcepacker/sourcepacker/internal/model"
)

// runStateChange returns a RunE that stamps state onto every argument path,
// recounts tokens, and saves the profile. select, deselect, and reset all
// share it.
func runStateChange(state model.SelectionState) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		ctx := context.Background()
		sess, err := a.loadSession(ctx)
		if err != nil {
			return err
		}

		updated := 0
		for _, arg := range args {
			path, err := filepath.Abs(arg)
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", arg, err)
			}
			changes := sess.UpdateNodeState(path, state)
			if changes == nil {
				PrintWarning(fmt.Sprintf("not in the scanned tree: %s", path))
				continue
			}
			updated += len(changes)
		}
		if updated == 0 {
			return errors.New("no matching paths in the scanned tree")
		}

		total := sess.RecountTokens(ctx)
		if err := a.store.Save(sess.Snapshot()); err != nil {
			return err
		}

		PrintSuccess(fmt.Sprintf("Marked %s as %s", PrintCount(updated, "entry", "entries"), state))
		PrintInfo(fmt.Sprintf("Selected total: %s", PrintCount(total, "token", "tokens")))
		return nil
	}
}

var selectCmd = &cobra.Command{
	Use:   "select <path>...",
	Short: "Mark paths as selected",
	Long: `Mark files or directories as selected for the archive.

Selecting a directory selects everything under it. Paths are resolved
against the current directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStateChange(model.StateSelected),
}
