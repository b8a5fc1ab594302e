package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivemark/drivemark/internal/bookmarks"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, DefaultBackupName, cfg.BackupName)
	assert.Equal(t, 8888, cfg.CallbackPort)
	assert.Equal(t, 60, cfg.CheckInterval)
	assert.False(t, cfg.DaemonEnabled)
	assert.False(t, cfg.Mail.Enabled)
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.Server)
	assert.Equal(t, 465, cfg.Mail.Port)
}

func TestDefaultConfigPath(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(XdgConfigHome, tmp)

	path, err := DefaultConfigPath()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, filepath.Join(tmp, ConfigFolderName)))
	assert.Equal(t, "drivemark.json", filepath.Base(path))

	// The config folder is created as a side effect
	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv(XdgConfigHome, t.TempDir())

	cfg := NewConfig()
	cfg.CredentialsPath = "/etc/drivemark/credentials.json"
	cfg.BackupName = "team_bookmarks.json"
	cfg.ArchivePath = "/var/backups/drivemark"
	cfg.DaemonEnabled = true
	cfg.CheckInterval = 30
	cfg.Providers = []bookmarks.ProviderConfig{
		{Name: "netscape", Enabled: true, Settings: map[string]interface{}{"path": "/home/u/bookmarks.html"}},
	}

	path := filepath.Join(t.TempDir(), "drivemark.json")
	require.NoError(t, Save(*cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "team_bookmarks.json", loaded.BackupName)
	assert.Equal(t, "/etc/drivemark/credentials.json", loaded.CredentialsPath)
	assert.Equal(t, "/var/backups/drivemark", loaded.ArchivePath)
	assert.True(t, loaded.DaemonEnabled)
	assert.Equal(t, 30, loaded.CheckInterval)
	require.Len(t, loaded.Providers, 1)
	assert.Equal(t, "netscape", loaded.Providers[0].Name)
	assert.Equal(t, "/home/u/bookmarks.html", loaded.Providers[0].Settings["path"])

	// Daemon paths default in next to the config file
	assert.NotEmpty(t, loaded.LogPath)
	assert.NotEmpty(t, loaded.PidFile)
}

func TestConfigProviderAccessors(t *testing.T) {
	cfg := NewConfig()
	cfg.CredentialsPath = "/tmp/credentials.json"
	cfg.CallbackPort = 9001
	cfg.Mail.Enabled = true
	cfg.Mail.Receiver = "me@example.com"

	provider := NewConfigProvider(cfg)

	assert.Equal(t, DefaultBackupName, provider.GetBackupName())
	assert.Equal(t, "/tmp/credentials.json", provider.GetCredentialsPath())
	assert.Equal(t, 9001, provider.GetCallbackPort())
	assert.True(t, provider.GetMail().Enabled)
	assert.Equal(t, "me@example.com", provider.GetMail().Receiver)
}
