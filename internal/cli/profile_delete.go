package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sourcepacker/sourcepacker/internal/profile"
)

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile",
	Long: `Delete a profile's stored file permanently.

This does not touch the project directory or any generated archive.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.store.Delete(name); err != nil {
			return err
		}

		// Deleting the active profile leaves no active profile behind.
		active, err := a.settings.LastProfile()
		if err != nil {
			return err
		}
		if active != "" && profile.SanitizeName(active) == profile.SanitizeName(name) {
			if err := a.settings.SetLastProfile(""); err != nil {
				return err
			}
		}

		PrintSuccess(fmt.Sprintf("Deleted profile: %s", name))
		return nil
	},
}
