package cmd

import (
	"context"
	"os"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/drivemark/drivemark/internal/cmdutil"
	"github.com/drivemark/drivemark/internal/drive"
	"github.com/drivemark/drivemark/internal/util"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authStatusCmd)
}

var exampleAuth = dedent.Dedent(`
	# Run the Google OAuth flow and cache the token
	drivemark auth

	# Check whether a token is cached
	drivemark auth status`,
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authorize drivemark to access your Google Drive",
	Long: `Runs the Google OAuth flow for the drive.file scope. A local listener
is opened for the browser callback, the returned code is exchanged for
a token and the token is cached for future runs.`,
	Example: exampleAuth,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := cmdutil.LoadConfigOrExit(cmd)
		if cfg == nil {
			os.Exit(1)
		}

		oauthCfg, err := drive.LoadSecrets(cfg.GetCredentialsPath(), cfg.GetCallbackPort())
		if err != nil {
			util.LogError(util.ConfigError, "loading client secrets", err)
			os.Exit(1)
		}

		if _, err := drive.Authorize(context.Background(), oauthCfg, cfg.GetCallbackPort()); err != nil {
			util.LogError(util.AuthError, "authorizing", err)
			os.Exit(1)
		}

		util.GreenBold.Println("Authenticated successfully")
		util.Green.Printf("Token saved to %s\n", drive.TokenPath())
		util.Cyan.Println("Ready to back up! Run 'drivemark backup' to upload your bookmarks.")
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show token cache status",
	Run: func(cmd *cobra.Command, args []string) {
		token, err := drive.LoadToken()
		if err != nil {
			util.Red.Println("No cached token found")
			util.Cyan.Println("Run 'drivemark auth' to authorize")
			os.Exit(1)
		}

		util.Green.Printf("Token cached at %s\n", drive.TokenPath())
		if token.Valid() {
			util.Green.Println("Access token is still valid")
		} else if token.RefreshToken != "" {
			util.Cyan.Println("Access token expired, will refresh on next use")
		} else {
			util.Red.Println("Token expired with no refresh token, run 'drivemark auth' again")
		}
	},
}
