package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sourcepacker/sourcepacker/internal/archive"
	"github.com/sourcepacker/sourcepacker/internal/model"
	"github.com/sourcepacker/sourcepacker/internal/session"
)

var (
	packOut   string
	packCheck bool
)

type packResult struct {
	Archive string `json:"archive"`
	Files   int    `json:"files"`
	Tokens  int    `json:"tokens"`
}

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Generate the text archive from the current selection",
	Long: `Concatenate every selected file into the profile's archive.

Each file lands between START and END marker lines carrying its path
relative to the project root. The profile is saved afterwards so the
archive path and fresh token counts persist.`,
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

		if packCheck {
			return runPackCheck(a, sess)
		}

		out := packOut
		if out == "" {
			out = sess.ArchivePath()
		}
		if out == "" {
			return errors.New("no archive path configured; pass --out or set one on the profile")
		}
		out, err = filepath.Abs(out)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", packOut, err)
		}

		content, err := a.archiver.Build(sess.Nodes(), sess.RootPath())
		if err != nil {
			return err
		}
		if content == "" {
			return errors.New("nothing selected; run 'sourcepacker select' first")
		}

		if err := a.archiver.Write(out, content); err != nil {
			return err
		}

		sess.SetArchivePath(out)
		if err := a.store.Save(sess.Snapshot()); err != nil {
			return err
		}

		files := 0
		model.Walk(sess.Nodes(), func(n *model.FileNode) {
			if !n.IsDir && n.State == model.StateSelected {
				files++
			}
		})

		if jsonOutput {
			return outputJSON(packResult{Archive: out, Files: files, Tokens: sess.TotalTokens()})
		}

		PrintSuccess(fmt.Sprintf("Archive written to %s", out))
		PrintInfo(fmt.Sprintf("%s, %s", PrintCount(files, "file", "files"),
			PrintCount(sess.TotalTokens(), "token", "tokens")))
		return nil
	},
}

func runPackCheck(a *app, sess *session.Session) error {
	status, err := a.archiver.Check(sess.ArchivePath(), sess.Nodes())
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(struct {
			Archive string `json:"archive,omitempty"`
			Status  string `json:"status"`
		}{Archive: sess.ArchivePath(), Status: status.String()})
	}

	if status == archive.StatusUpToDate {
		PrintSuccess(fmt.Sprintf("Archive status: %s", status))
	} else {
		PrintWarning(fmt.Sprintf("Archive status: %s", status))
	}
	return nil
}

func init() {
	packCmd.Flags().StringVar(&packOut, "out", "", "Write the archive to this path instead of the profile's")
	packCmd.Flags().BoolVar(&packCheck, "check", false, "Only report whether the archive is current")
}
