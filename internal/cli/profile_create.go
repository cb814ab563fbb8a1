package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sourcepacker/sourcepacker/internal/profile"
)

var (
	createRoot     string
	createArchive  string
	createExcludes []string
)

var profileCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new profile",
	Long: `Create a profile rooted at a project directory and make it active.

Every file under the root starts out unreviewed until you select or
deselect it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		a, err := newApp()
		if err != nil {
			return err
		}

		if err := profile.ValidateName(name); err != nil {
			return err
		}
		if _, err := a.store.Load(name); err == nil {
			return fmt.Errorf("profile %q already exists", name)
		} else if !os.IsNotExist(err) {
			return err
		}

		root, err := filepath.Abs(createRoot)
		if err != nil {
			return fmt.Errorf("failed to resolve root %s: %w", createRoot, err)
		}
		info, err := a.fs.Stat(root)
		if err != nil {
			return fmt.Errorf("failed to stat root %s: %w", root, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("root %s is not a directory", root)
		}

		p := profile.New(name, root)
		p.ArchivePath = createArchive
		p.ExcludePatterns = append(p.ExcludePatterns, createExcludes...)

		if err := a.store.Save(p); err != nil {
			return err
		}
		if err := a.settings.SetLastProfile(name); err != nil {
			return err
		}

		PrintSuccess(fmt.Sprintf("Created and activated profile: %s", name))
		PrintLabelValue("Root", root)
		return nil
	},
}

func init() {
	profileCreateCmd.Flags().StringVar(&createRoot, "root", ".", "Project root directory to scan")
	profileCreateCmd.Flags().StringVar(&createArchive, "archive", "", "Output path for the generated archive")
	profileCreateCmd.Flags().StringArrayVar(&createExcludes, "exclude", nil, "Glob pattern to exclude from scans (repeatable)")
}
