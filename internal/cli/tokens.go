package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

var tokensPerFile bool

type tokensResult struct {
	Total int            `json:"total"`
	Files map[string]int `json:"files,omitempty"`
}

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Report token counts for the current selection",
	Long: `Count the tokens the current selection would occupy in a model prompt.

Counts come from the profile's checksum cache, so only files that changed
since the last run are re-read.`,
	Args: cobra.NoArgs,
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

		result := tokensResult{Total: sess.TotalTokens()}
		if tokensPerFile || jsonOutput {
			snap := sess.Snapshot()
			result.Files = make(map[string]int, len(snap.FileDetails))
			for path, details := range snap.FileDetails {
				result.Files[path] = details.TokenCount
			}
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if tokensPerFile {
			paths := make([]string, 0, len(result.Files))
			for path := range result.Files {
				paths = append(paths, path)
			}
			sort.Strings(paths)

			rows := make([][]string, 0, len(paths))
			for _, path := range paths {
				display, err := filepath.Rel(sess.RootPath(), path)
				if err != nil {
					display = path
				}
				rows = append(rows, []string{display, strconv.Itoa(result.Files[path])})
			}
			PrintTable([]string{"FILE", "TOKENS"}, rows)
			fmt.Println()
		}

		PrintInfo(fmt.Sprintf("Total: %s", PrintCount(result.Total, "token", "tokens")))
		return nil
	},
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensPerFile, "per-file", false, "Show a per-file breakdown")
}
