package cli

import (
	"github.com/spf13/cobra"

	"github.com/sourcepacker/sourcepacker/internal/model"
)

var resetCmd = &cobra.Command{
	Use:   "reset <path>...",
	Short: "Clear the recorded choice for paths",
	Long: `Return files or directories to the unreviewed state.

A reset path is treated like a file that just appeared on disk: it stays
out of the archive until selected again, and it drops out of the profile's
path lists on the next save.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStateChange(model.StateNew),
}
