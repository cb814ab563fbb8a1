package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sourcepacker/sourcepacker/internal/profile"
)

type profileListResult struct {
	Profiles []string `json:"profiles"`
	Active   string   `json:"active,omitempty"`
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		names, err := a.store.List()
		if err != nil {
			return err
		}
		active, err := a.settings.LastProfile()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(profileListResult{Profiles: names, Active: active})
		}

		if len(names) == 0 {
			PrintEmptyState("No profiles found")
			return nil
		}

		// Stored filenames are sanitized, so compare in that form.
		activeStem := profile.SanitizeName(active)
		for _, name := range names {
			if name == activeStem && activeStem != "" {
				PrintInfo(fmt.Sprintf("* %s (active)", name))
			} else {
				PrintInfo(fmt.Sprintf("  %s", name))
			}
		}
		return nil
	},
}
