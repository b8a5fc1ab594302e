package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drivemark/drivemark/internal/config"
	"github.com/drivemark/drivemark/internal/util"
)

func init() {
	var configPath string
	configPath, err := config.DefaultConfigPath()
	if err != nil {
		util.Red.Println("Error setting default config path: ", err)
		os.Exit(1)
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", configPath, "Path to config file")
}

var rootCmd = &cobra.Command{
	Use:   "drivemark",
	Short: "Back up your bookmarks to Google Drive",
	Long: `drivemark gathers bookmarks from a local source, serializes them to JSON
and uploads the snapshot to your Google Drive. The first run creates the
remote backup file; later runs update it in place.

Bookmark sources are pluggable: a browser bookmark export, a SQLite
bookmark database, plain-text URL lists or built-in sample data. A
daemon mode keeps the remote backup fresh on a fixed interval.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Show help if no command is provided
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
