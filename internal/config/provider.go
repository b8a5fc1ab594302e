package config

import "github.com/drivemark/drivemark/internal/bookmarks"

// ConfigProvider defines the interface for configuration access
type ConfigProvider interface {
	GetBackupName() string
	GetCredentialsPath() string
	GetCallbackPort() int
	GetArchivePath() string
	GetProviders() []bookmarks.ProviderConfig
	GetCheckInterval() int
	IsDaemonEnabled() bool
	GetLogPath() string
	GetPidFile() string
	GetMail() MailConfig
}

// ConfigImpl implements ConfigProvider interface
type ConfigImpl struct {
	cfg *config
}

// NewConfigProvider creates a new ConfigProvider instance
func NewConfigProvider(cfg *config) ConfigProvider {
	return &ConfigImpl{cfg: cfg}
}

func (c *ConfigImpl) GetBackupName() string {
	return c.cfg.BackupName
}

func (c *ConfigImpl) GetCredentialsPath() string {
	return c.cfg.CredentialsPath
}

func (c *ConfigImpl) GetCallbackPort() int {
	return c.cfg.CallbackPort
}

func (c *ConfigImpl) GetArchivePath() string {
	return c.cfg.ArchivePath
}

func (c *ConfigImpl) GetProviders() []bookmarks.ProviderConfig {
	return c.cfg.Providers
}

func (c *ConfigImpl) GetCheckInterval() int {
	return c.cfg.CheckInterval
}

func (c *ConfigImpl) IsDaemonEnabled() bool {
	return c.cfg.DaemonEnabled
}

func (c *ConfigImpl) GetLogPath() string {
	return c.cfg.LogPath
}

func (c *ConfigImpl) GetPidFile() string {
	return c.cfg.PidFile
}

func (c *ConfigImpl) GetMail() MailConfig {
	return c.cfg.Mail
}
