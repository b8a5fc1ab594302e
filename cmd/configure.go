package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/drivemark/drivemark/internal/config"
	"github.com/drivemark/drivemark/internal/util"
)

func init() {
	rootCmd.AddCommand(configureCmd)
}

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Configure drivemark settings",
	Long: `Configure drivemark settings including the Google client secrets path,
the remote backup file name, bookmark sources and the daemon interval.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")

		if _, err := os.Stat(configPath); err != nil {
			util.CyanBold.Println("Creating new configuration...")
			cfg, err := config.CreateConfig()
			if err != nil {
				util.Red.Printf("Error creating configuration: %v\n", err)
				os.Exit(1)
			}
			if err := config.Save(*cfg, configPath); err != nil {
				util.Red.Printf("Error saving configuration: %v\n", err)
				os.Exit(1)
			}
			config.InitializeConfig(cfg)
			util.Green.Printf("Configuration saved to %s\n", configPath)
		} else {
			util.CyanBold.Println("Updating existing configuration...")
			cfg, err := config.Load(configPath)
			if err != nil {
				util.Red.Printf("Error loading configuration: %v\n", err)
				os.Exit(1)
			}

			util.Cyan.Println("\nCurrent daemon settings:")
			util.Cyan.Printf("Daemon enabled: %t\n", cfg.DaemonEnabled)
			util.Cyan.Printf("Backup name: %s\n", cfg.BackupName)
			util.Cyan.Printf("Backup interval: %d minutes\n", cfg.CheckInterval)

			util.CyanBold.Println("\nUpdate daemon configuration? (y/n):")
			response := util.ScanlineTrim()

			if response == "y" || response == "Y" || response == "yes" {
				util.Cyan.Printf("Run periodic backups in the background? (y/n, current: %t): ", cfg.DaemonEnabled)
				answer := util.ScanlineTrim()

				if answer == "y" || answer == "Y" || answer == "yes" {
					cfg.DaemonEnabled = true

					util.Cyan.Printf("Backup interval in minutes (current: %d): ", cfg.CheckInterval)
					intervalStr := util.ScanlineTrim()
					if intervalStr != "" {
						if interval, err := strconv.Atoi(intervalStr); err == nil && interval > 0 {
							cfg.CheckInterval = interval
						}
					}
				} else {
					cfg.DaemonEnabled = false
				}

				// Save updated config
				if err := config.Save(cfg, configPath); err != nil {
					util.Red.Printf("Error saving configuration: %v\n", err)
					os.Exit(1)
				}

				util.Green.Println("Configuration updated successfully!")
			}
		}

		util.CyanBold.Println("\nNext steps:")
		util.Cyan.Println("- Run 'drivemark auth' to authorize access to your Google Drive")
		if config.GetInstance() != nil && config.GetInstance().DaemonEnabled {
			util.Cyan.Println("- Run 'drivemark daemon start' to start the background daemon")
			util.Cyan.Println("- Run 'drivemark daemon status' to check daemon status")
		} else {
			util.Cyan.Println("- Run 'drivemark backup' for a one-time backup")
			util.Cyan.Println("- Run 'drivemark configure' again to enable daemon mode")
		}
	},
}
