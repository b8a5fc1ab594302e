package drive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const testSecrets = `{
  "installed": {
    "client_id": "test-client-id.apps.googleusercontent.com",
    "client_secret": "test-secret",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token",
    "redirect_uris": ["http://localhost"]
  }
}`

func TestTokenPathXDG(t *testing.T) {
	path := TokenPath()

	expectedBase := filepath.Join(xdg.DataHome, "drivemark")
	assert.True(t, strings.HasPrefix(path, expectedBase), "expected path under %s, got %s", expectedBase, path)
	assert.Equal(t, "token.json", filepath.Base(path))
}

func TestSaveAndLoadToken(t *testing.T) {
	origHome := xdg.DataHome
	xdg.DataHome = t.TempDir()
	defer func() { xdg.DataHome = origHome }()

	token := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour).UTC(),
	}

	require.NoError(t, SaveToken(token))

	info, err := os.Stat(TokenPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "token file should be user-readable only")

	loaded, err := LoadToken()
	require.NoError(t, err)
	assert.Equal(t, token.AccessToken, loaded.AccessToken)
	assert.Equal(t, token.RefreshToken, loaded.RefreshToken)
}

func TestLoadTokenMissing(t *testing.T) {
	origHome := xdg.DataHome
	xdg.DataHome = t.TempDir()
	defer func() { xdg.DataHome = origHome }()

	_, err := LoadToken()
	assert.Error(t, err)
}

func TestLoadSecrets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(testSecrets), 0600))

	config, err := LoadSecrets(path, 0)
	require.NoError(t, err)

	assert.Equal(t, "test-client-id.apps.googleusercontent.com", config.ClientID)
	assert.Equal(t, []string{"https://www.googleapis.com/auth/drive.file"}, config.Scopes)
	assert.Equal(t, "http://localhost:8888/oauth/callback", config.RedirectURL)
}

func TestLoadSecretsCustomPort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(testSecrets), 0600))

	config, err := LoadSecrets(path, 9999)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/oauth/callback", config.RedirectURL)
}

func TestLoadSecretsMissingFile(t *testing.T) {
	_, err := LoadSecrets(filepath.Join(t.TempDir(), "credentials.json"), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read client secrets file")
}

func TestLoadSecretsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))

	_, err := LoadSecrets(path, 0)
	assert.Error(t, err)
}
