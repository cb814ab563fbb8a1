package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var profileShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a profile's stored settings",
	Long:  `Display a profile as stored on disk. Defaults to the active profile.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		var name string
		if len(args) == 1 {
			name = args[0]
		} else {
			name, err = a.activeProfileName()
			if err != nil {
				return err
			}
		}

		p, err := a.store.Load(name)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("profile %q does not exist", name)
			}
			return err
		}

		if jsonOutput {
			return outputJSON(p)
		}

		PrintSection(fmt.Sprintf("Profile: %s", p.Name))
		PrintLabelValue("Root", p.RootFolder)
		archivePath := p.ArchivePath
		if archivePath == "" {
			archivePath = "(not set)"
		}
		PrintLabelValue("Archive", archivePath)
		PrintLabelValue("Selected paths", strconv.Itoa(len(p.SelectedPaths)))
		PrintLabelValue("Deselected paths", strconv.Itoa(len(p.DeselectedPaths)))
		PrintLabelValue("Cached token counts", strconv.Itoa(len(p.FileDetails)))
		if len(p.ExcludePatterns) > 0 {
			PrintLabelValue("Excludes", strings.Join(p.ExcludePatterns, ", "))
		}
		if p.SavedAt != nil {
			PrintLabelValue("Saved", p.SavedAt.Format(time.RFC3339))
		}
		return nil
	},
}
