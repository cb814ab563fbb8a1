package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sourcepacker/sourcepacker/internal/model"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the scanned file tree with selection marks",
	Long: `Print the scanned project tree for the active profile.

Each entry carries a mark: [x] selected, [ ] deselected, [?] not yet
reviewed. Directories end with a slash.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		sess, err := a.loadSession(context.Background())
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(sess.Nodes())
		}

		PrintInfo(sess.RootPath())
		printTree(sess.Nodes(), 1)
		fmt.Println()
		PrintInfo(fmt.Sprintf("%s, %d tokens selected",
			PrintCount(model.CountNodes(sess.Nodes()), "entry", "entries"), sess.TotalTokens()))
		return nil
	},
}

func printTree(nodes []*model.FileNode, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, node := range nodes {
		name := node.Name
		if node.IsDir {
			name += "/"
		}
		_, _ = stateColor(node.State).Printf("%s%s %s\n", indent, stateMark(node.State), name)
		printTree(node.Children, depth+1)
	}
}
