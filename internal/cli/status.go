package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sourcepacker/sourcepacker/internal/logging"
	"github.com/sourcepacker/sourcepacker/internal/model"
)

type statusResult struct {
	Profile         string `json:"profile"`
	Root            string `json:"root"`
	ArchivePath     string `json:"archive_path,omitempty"`
	ArchiveStatus   string `json:"archive_status"`
	TotalTokens     int    `json:"total_tokens"`
	SelectedFiles   int    `json:"selected_files"`
	DeselectedFiles int    `json:"deselected_files"`
	NewFiles        int    `json:"new_files"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active profile's selection and archive freshness",
	Long:  `Rescan the project root and summarize the selection against the stored profile.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		ctx := context.Background()
		sess, err := a.loadSession(ctx)
		if err != nil {
			return err
		}

		// The freshness check is advisory; an I/O failure there surfaces
		// as a status, not a command failure.
		archStatus, archErr := a.archiver.Check(sess.ArchivePath(), sess.Nodes())
		if archErr != nil {
			logging.L().Warn("archive freshness check failed", zap.Error(archErr))
		}

		result := statusResult{
			Profile:       sess.ProfileName(),
			Root:          sess.RootPath(),
			ArchivePath:   sess.ArchivePath(),
			ArchiveStatus: archStatus.String(),
			TotalTokens:   sess.TotalTokens(),
		}
		model.Walk(sess.Nodes(), func(n *model.FileNode) {
			if n.IsDir {
				return
			}
			switch n.State {
			case model.StateSelected:
				result.SelectedFiles++
			case model.StateDeselected:
				result.DeselectedFiles++
			default:
				result.NewFiles++
			}
		})

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection("Profile Status")
		PrintLabelValue("Profile", result.Profile)
		PrintLabelValue("Root", result.Root)
		if result.ArchivePath != "" {
			PrintLabelValue("Archive", result.ArchivePath)
		}
		PrintLabelValue("Archive status", result.ArchiveStatus)
		PrintLabelValue("Selected files", strconv.Itoa(result.SelectedFiles))
		PrintLabelValue("Deselected files", strconv.Itoa(result.DeselectedFiles))
		PrintLabelValue("Total tokens", strconv.Itoa(result.TotalTokens))

		if result.NewFiles > 0 {
			fmt.Println()
			PrintWarning(fmt.Sprintf("%s awaiting review; run 'sourcepacker tree' to see them",
				PrintCount(result.NewFiles, "new file", "new files")))
		}
		return nil
	},
}
