package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var useCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the active profile",
	Long:  `Set the profile that selection and archive commands operate on by default.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		a, err := newApp()
		if err != nil {
			return err
		}

		if _, err := a.store.Load(name); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("profile %q does not exist", name)
			}
			return err
		}

		if err := a.settings.SetLastProfile(name); err != nil {
			return err
		}

		PrintSuccess(fmt.Sprintf("Active profile set to: %s", name))
		return nil
	},
}
