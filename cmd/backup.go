package cmd

import (
	"context"
	"os"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/drivemark/drivemark/internal/cmdutil"
	"github.com/drivemark/drivemark/internal/handler"
	"github.com/drivemark/drivemark/internal/util"
)

func init() {
	rootCmd.AddCommand(backupCmd)
}

var (
	helpBackup = `Runs one backup: gathers bookmarks from the configured sources,
serializes them to a JSON snapshot and uploads it to Google Drive.
If a backup file already exists on Drive its content is replaced,
otherwise a new file is created.`

	exampleBackup = dedent.Dedent(`
		# Back up bookmarks using the configured sources
		drivemark backup

		# Back up with an alternate config file
		drivemark backup -c /path/to/drivemark.json`,
	)
)

var backupCmd = &cobra.Command{
	Use:     "backup",
	Short:   "Back up bookmarks to Google Drive now",
	Long:    helpBackup,
	Example: exampleBackup,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := cmdutil.LoadConfigOrExit(cmd)
		if cfg == nil {
			os.Exit(1)
		}

		ctx := context.Background()

		registry, err := handler.BuildRegistry(cfg)
		if err != nil {
			util.LogError(util.BookmarkError, "building provider registry", err)
			os.Exit(1)
		}

		backup, err := handler.DriveBackup(ctx, cfg)
		if err != nil {
			util.LogError(util.AuthError, "connecting to Drive", err)
			os.Exit(1)
		}

		result, err := handler.Run(ctx, cfg, registry, backup, "")
		if err != nil {
			util.LogError(util.DriveError, "performing backup", err)
			os.Exit(1)
		}

		if result.Drive.Created {
			util.GreenBold.Printf("Backup complete: created new file (ID: %s)\n", result.Drive.FileID)
			if result.Drive.WebLink != "" {
				util.Cyan.Printf("Download link: %s\n", result.Drive.WebLink)
			}
		} else {
			util.GreenBold.Printf("Backup complete: updated file (ID: %s)\n", result.Drive.FileID)
			if result.Drive.ModifiedTime != "" {
				util.Cyan.Printf("New modified time: %s\n", result.Drive.ModifiedTime)
			}
		}
		util.Green.Printf("%d bookmarks backed up\n", result.Count)
	},
}
