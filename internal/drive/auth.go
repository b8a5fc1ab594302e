package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"

	"github.com/drivemark/drivemark/internal/util"
)

// DefaultCallbackPort is the local port the OAuth callback listener
// binds during the interactive grant.
const DefaultCallbackPort = 8888

// TokenPath returns the XDG-compliant path for the cached OAuth token.
func TokenPath() string {
	return filepath.Join(xdg.DataHome, "drivemark", "token.json")
}

// LoadSecrets reads the OAuth client secrets file (the credentials.json
// downloaded from the Google Cloud Console) and builds the OAuth2
// config with the drive.file scope.
func LoadSecrets(path string, callbackPort int) (*oauth2.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read client secrets file %s: %w", path, err)
	}

	config, err := google.ConfigFromJSON(data, drive.DriveFileScope)
	if err != nil {
		return nil, fmt.Errorf("could not parse client secrets file: %w", err)
	}

	if callbackPort == 0 {
		callbackPort = DefaultCallbackPort
	}
	config.RedirectURL = fmt.Sprintf("http://localhost:%d/oauth/callback", callbackPort)

	return config, nil
}

// SaveToken saves the OAuth token to the XDG data directory.
func SaveToken(token *oauth2.Token) error {
	path := TokenPath()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	return nil
}

// LoadToken loads the cached OAuth token from the XDG data directory.
func LoadToken() (*oauth2.Token, error) {
	path := TokenPath()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open token file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var token oauth2.Token
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	return &token, nil
}

// Authorize runs the interactive installed-app grant: it starts a local
// callback listener, directs the user to the consent URL, exchanges the
// returned code and persists the token.
func Authorize(ctx context.Context, config *oauth2.Config, callbackPort int) (*oauth2.Token, error) {
	if callbackPort == 0 {
		callbackPort = DefaultCallbackPort
	}

	callbackChan := make(chan *oauth2.Token)
	errChan := make(chan error)

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/callback", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			errChan <- fmt.Errorf("no authorization code received")
			return
		}

		token, err := config.Exchange(ctx, code)
		if err != nil {
			errChan <- fmt.Errorf("failed to exchange code: %w", err)
			return
		}

		callbackChan <- token
		_, _ = fmt.Fprintf(w, "Authorization successful! You can close this window.")
	})

	server := &http.Server{Addr: fmt.Sprintf(":%d", callbackPort), Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	authURL := config.AuthCodeURL("state", oauth2.AccessTypeOffline)

	util.Cyan.Println("Opening browser for Google OAuth...")
	util.Cyan.Printf("\nIf the browser doesn't open, visit this URL:\n%s\n\n", authURL)

	_ = openBrowser(authURL)

	select {
	case token := <-callbackChan:
		_ = server.Shutdown(ctx)

		if err := SaveToken(token); err != nil {
			return nil, fmt.Errorf("failed to save token: %w", err)
		}
		return token, nil

	case err := <-errChan:
		_ = server.Shutdown(ctx)
		return nil, fmt.Errorf("OAuth flow failed: %w", err)

	case <-ctx.Done():
		_ = server.Shutdown(context.Background())
		return nil, ctx.Err()
	}
}

// openBrowser attempts to open URL in the default browser
func openBrowser(url string) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
		args = []string{url}
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start", url}
	default:
		cmd = "xdg-open"
		args = []string{url}
	}

	command := exec.Command(cmd, args...)
	return command.Start()
}
