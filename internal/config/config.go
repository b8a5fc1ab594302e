package config

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"path"
	"strconv"

	"github.com/drivemark/drivemark/internal/bookmarks"
	"github.com/drivemark/drivemark/internal/util"
)

type config struct {
	BackupName      string `json:"backup_name"`
	CredentialsPath string `json:"credentials_path"`
	CallbackPort    int    `json:"callback_port"`
	ArchivePath     string `json:"archive_path"`

	Providers []bookmarks.ProviderConfig `json:"providers"`

	CheckInterval int    `json:"check_interval_minutes"`
	DaemonEnabled bool   `json:"daemon_enabled"`
	LogPath       string `json:"log_path"`
	PidFile       string `json:"pid_file"`

	Mail MailConfig `json:"mail"`
}

// MailConfig holds optional SMTP notification settings
type MailConfig struct {
	Enabled  bool   `json:"enabled"`
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Password string `json:"password"`
	Server   string `json:"server"`
	Port     int    `json:"port"`
}

const DefaultBackupName = "my_bookmarks_backup.json"
const DefaultTimeout = 120
const XdgConfigHome = "XDG_CONFIG_HOME"
const ConfigFolderName = "drivemark"

var instance *config

func DefaultConfigPath() (string, error) {
	user, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("couldn't get current user: %w", err)
	}
	xdgConfigHome := os.Getenv(XdgConfigHome)
	var configFolder string
	if len(xdgConfigHome) == 0 {
		configFolder = path.Join(user.HomeDir, ".config")
		configFolder = path.Join(configFolder, ConfigFolderName)
	} else {
		configFolder = path.Join(xdgConfigHome, ConfigFolderName)
	}
	if err := os.MkdirAll(configFolder, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return path.Join(configFolder, "drivemark.json"), nil
}

func SetDaemonDefaults(c *config) error {
	if c.LogPath == "" {
		configPath, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		configDir := path.Dir(configPath)
		c.LogPath = path.Join(configDir, "drivemark.log")
	}

	if c.PidFile == "" {
		configPath, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		configDir := path.Dir(configPath)
		c.PidFile = path.Join(configDir, "drivemark.pid")
	}

	return nil
}

func exists(filename string) bool {
	if _, err := os.Stat(filename); err != nil {
		util.Red.Println(err)
		return false
	}
	return true
}

func NewConfig() *config {
	config := config{}
	config.BackupName = DefaultBackupName
	config.CallbackPort = 8888

	config.CheckInterval = 60
	config.DaemonEnabled = false
	config.LogPath = ""
	config.PidFile = ""

	config.Mail.Server = "smtp.gmail.com"
	config.Mail.Port = 465
	return &config
}

func CreateConfig() (*config, error) {
	util.CyanBold.Println("CONFIGURE DRIVEMARK")

	configuration := NewConfig()

	util.Cyan.Printf("Path to your OAuth client secrets file (the credentials.json from Google Cloud Console) : ")
	configuration.CredentialsPath = util.ScanlineTrim()

	util.Cyan.Printf("Name of the backup file on Google Drive (default %s) : ", DefaultBackupName)
	if name := util.ScanlineTrim(); name != "" {
		configuration.BackupName = name
	}

	util.CyanBold.Println("\nBOOKMARK SOURCE")
	util.Cyan.Println("Where should bookmarks come from?")
	util.Cyan.Println("1. Browser bookmark export file (HTML)")
	util.Cyan.Println("2. SQLite bookmark database")
	util.Cyan.Println("3. Plain-text URL list file/folder")
	util.Cyan.Println("4. Built-in sample data")
	util.Cyan.Printf("Choice (default 4) : ")
	choice := util.ScanlineTrim()

	switch choice {
	case "1":
		util.Cyan.Printf("Path to the bookmark export file : ")
		configuration.Providers = append(configuration.Providers, bookmarks.ProviderConfig{
			Name:     "netscape",
			Enabled:  true,
			Settings: map[string]interface{}{"path": util.ScanlineTrim()},
		})
	case "2":
		util.Cyan.Printf("Path to the bookmark database : ")
		configuration.Providers = append(configuration.Providers, bookmarks.ProviderConfig{
			Name:     "sqlite",
			Enabled:  true,
			Settings: map[string]interface{}{"path": util.ScanlineTrim()},
		})
	case "3":
		util.Cyan.Printf("Path to the URL list file or folder : ")
		configuration.Providers = append(configuration.Providers, bookmarks.ProviderConfig{
			Name:     "file",
			Enabled:  true,
			Settings: map[string]interface{}{"path": util.ScanlineTrim()},
		})
	default:
		configuration.Providers = append(configuration.Providers, bookmarks.ProviderConfig{
			Name:    "sample",
			Enabled: true,
		})
	}

	util.Cyan.Printf("Folder to keep local archive copies of each backup (empty to skip) : ")
	configuration.ArchivePath = util.ScanlineTrim()

	util.CyanBold.Println("\nDAEMON CONFIGURATION")
	util.Cyan.Printf("Run periodic backups in the background? (y/n) : ")
	if answer := util.ScanlineTrim(); answer == "y" || answer == "Y" || answer == "yes" {
		configuration.DaemonEnabled = true
		util.Cyan.Printf("Backup interval in minutes (default 60) : ")
		intervalStr := util.ScanlineTrim()
		if intervalStr != "" {
			if interval, err := strconv.Atoi(intervalStr); err == nil && interval > 0 {
				configuration.CheckInterval = interval
			}
		}
	}

	util.CyanBold.Println("\nMAIL NOTIFICATION (optional)")
	util.Cyan.Printf("Email a copy of each backup? (y/n) : ")
	if answer := util.ScanlineTrim(); answer == "y" || answer == "Y" || answer == "yes" {
		configuration.Mail.Enabled = true
		util.Cyan.Printf("Sender email (eg. yourname@gmail.com) : ")
		configuration.Mail.Sender = util.ScanlineTrim()
		util.Cyan.Printf("Receiver email : ")
		configuration.Mail.Receiver = util.ScanlineTrim()
		util.Cyan.Printf("Password for sender %s (app password recommended) : ", configuration.Mail.Sender)
		configuration.Mail.Password = util.ScanlineTrim()
		util.Cyan.Printf("SMTP server (default smtp.gmail.com) : ")
		if server := util.ScanlineTrim(); server != "" {
			configuration.Mail.Server = server
		}
		util.Cyan.Printf("SMTP port (default 465) : ")
		if portStr := util.ScanlineTrim(); portStr != "" {
			if port, err := strconv.Atoi(portStr); err == nil {
				configuration.Mail.Port = port
			}
		}
	}

	return configuration, nil
}

func handleCreation(filename string) error {
	util.Red.Println("Configuration file doesn't exist\n Answer next few questions to create config file")
	configuration, err := CreateConfig()
	if err != nil {
		return fmt.Errorf("failed to create configuration: %w", err)
	}
	err = Save(*configuration, filename)
	if err != nil {
		util.Red.Println("Error while writing config to ", filename, err)
		return err
	}
	util.Green.Printf("Config created successfully and stored at %s, you can directly edit it later on \n", filename)
	return nil
}

func LoadProvider(filename string) (ConfigProvider, error) {
	cfg, err := Load(filename)
	if err != nil {
		return nil, err
	}
	return NewConfigProvider(&cfg), nil
}

func Load(filename string) (config, error) {
	if !exists(filename) {
		err := handleCreation(filename)
		if err != nil {
			return config{}, err
		}
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		util.Red.Println("Error reading config ", err)
		return config{}, err
	}
	var c config
	err = json.Unmarshal(data, &c)
	if err != nil {
		util.Red.Println("Error converting config to json ", err)
		return config{}, err
	}

	if err := SetDaemonDefaults(&c); err != nil {
		util.Red.Println("Error setting daemon defaults: ", err)
		return config{}, err
	}

	InitializeConfig(&c)
	return c, nil
}

func Save(c config, filename string) error {
	data, err := json.MarshalIndent(c, "", "	")
	if err != nil {
		util.Red.Println("Error parsing configuration for writing")
		return err
	}
	// Config may hold an SMTP password, keep it user-readable only
	return os.WriteFile(filename, data, 0600)
}

func InitializeConfig(c *config) {
	if instance == nil {
		instance = c
		util.Green.Println("Loaded configuration")
	}
}

func GetInstance() *config {
	return instance
}
