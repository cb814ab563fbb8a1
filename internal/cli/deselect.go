package cli

import (
	"github.com/spf13/cobra"

	"github.com/sourcepacker/sourcepacker/internal/model"
)

var deselectCmd = &cobra.Command{
	Use:   "deselect <path>...",
	Short: "Mark paths as deselected",
	Long: `Mark files or directories as explicitly excluded from the archive.

Deselecting a directory deselects everything under it. Paths are resolved
against the current directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStateChange(model.StateDeselected),
}
