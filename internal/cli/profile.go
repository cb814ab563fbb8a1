package cli

import (
	"github.com/spf13/cobra"
)

// profileCmd groups the profile management subcommands.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage selection profiles",
	Long:  `Create, inspect, and delete selection profiles.`,
}

func init() {
	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileDeleteCmd)
}
