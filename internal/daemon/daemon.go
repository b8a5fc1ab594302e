package daemon

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/drivemark/drivemark/internal/config"
	"github.com/drivemark/drivemark/internal/handler"
	"github.com/drivemark/drivemark/internal/logger"
	"github.com/drivemark/drivemark/internal/util"
)

type Daemon struct {
	ctx    context.Context
	cancel context.CancelFunc
	ticker *time.Ticker
	state  *StateStore
	cfg    config.ConfigProvider
	logger logger.LoggerInterface
}

func NewDaemon(cfg config.ConfigProvider) (*Daemon, error) {
	ctx, cancel := context.WithCancel(context.Background())

	loggerInstance, err := logger.NewLogger(cfg)
	if err != nil {
		cancel() // Ensure cancel is called on error path
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &Daemon{
		ctx:    ctx,
		cancel: cancel,
		state:  NewStateStore(cfg),
		cfg:    cfg,
		logger: loggerInstance,
	}, nil
}

func (d *Daemon) Start() error {
	if err := d.validateConfiguration(); err != nil {
		return err
	}

	if err := d.initializeServices(); err != nil {
		return err
	}
	defer d.logger.Close()

	sigChan := d.setupSignalHandling()
	d.setupTicker()
	d.logStartupInfo()
	d.runBackup()

	return d.runEventLoop(sigChan)
}

func (d *Daemon) validateConfiguration() error {
	if d.cfg == nil {
		return fmt.Errorf("configuration not provided")
	}

	if !d.cfg.IsDaemonEnabled() {
		return fmt.Errorf("daemon is not enabled in configuration")
	}

	if d.cfg.GetCredentialsPath() == "" {
		return fmt.Errorf("client secrets path is not configured")
	}

	if d.isRunning() {
		return fmt.Errorf("daemon is already running")
	}

	return nil
}

func (d *Daemon) initializeServices() error {
	if err := d.writePidFile(); err != nil {
		return fmt.Errorf("failed to write PID file: %v", err)
	}

	return nil
}

func (d *Daemon) setupSignalHandling() chan os.Signal {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	return sigChan
}

func (d *Daemon) setupTicker() {
	interval := time.Duration(d.cfg.GetCheckInterval()) * time.Minute
	d.ticker = time.NewTicker(interval)
}

func (d *Daemon) logStartupInfo() {
	util.GreenBold.Printf("Drivemark daemon started, backing up bookmarks every %d minutes\n", d.cfg.GetCheckInterval())
	util.Cyan.Printf("Remote backup file: %s\n", d.cfg.GetBackupName())
	util.Cyan.Printf("PID file: %s\n", d.cfg.GetPidFile())
	util.Cyan.Printf("Log file: %s\n", d.cfg.GetLogPath())

	d.logger.Infof("Daemon started with PID %d", os.Getpid())
	d.logger.Infof("Remote backup file: %s", d.cfg.GetBackupName())
	d.logger.Infof("Backup interval: %d minutes", d.cfg.GetCheckInterval())
}

func (d *Daemon) runEventLoop(sigChan chan os.Signal) error {
	for {
		select {
		case <-d.ctx.Done():
			d.logger.Info("Daemon context cancelled")
			util.Cyan.Println("Daemon context cancelled")
			d.cleanup()
			return nil
		case sig := <-sigChan:
			d.logger.Infof("Received signal: %v", sig)
			util.Cyan.Printf("Received signal: %v\n", sig)
			d.Stop()
			return nil
		case <-d.ticker.C:
			d.logger.Info("Starting backup cycle")
			util.Cyan.Printf("Backing up bookmarks at %s\n", time.Now().Format("2006-01-02 15:04:05"))
			d.runBackup()
		}
	}
}

func (d *Daemon) Stop() {
	d.logger.Info("Stopping daemon...")
	util.Cyan.Println("Stopping daemon...")

	if d.ticker != nil {
		d.ticker.Stop()
	}

	d.cancel()
	d.cleanup()

	d.logger.Info("Daemon stopped successfully")
	util.Green.Println("Daemon stopped successfully")
}

func (d *Daemon) runBackup() {
	registry, err := handler.BuildRegistry(d.cfg)
	if err != nil {
		d.logger.Errorf("Error building provider registry: %v", err)
		util.Red.Printf("Error building provider registry: %v\n", err)
		return
	}

	backup, err := handler.DriveBackup(d.ctx, d.cfg)
	if err != nil {
		d.logger.Errorf("Error connecting to Drive: %v", err)
		util.Red.Printf("Error connecting to Drive: %v\n", err)
		return
	}

	result, err := handler.Run(d.ctx, d.cfg, registry, backup, d.state.LastHash())
	if err != nil {
		d.logger.Errorf("Backup failed: %v", err)
		util.Red.Printf("Backup failed: %v\n", err)
		return
	}

	if result.Skipped {
		d.logger.Info("Bookmarks unchanged since last backup, skipping upload")
		util.Cyan.Println("Bookmarks unchanged since last backup, skipping upload")
		return
	}

	d.state.Record(result.Hash, result.Count)

	if result.Drive.Created {
		d.logger.Infof("Created new remote backup (%d bookmarks, file ID %s)", result.Count, result.Drive.FileID)
		util.GreenBold.Printf("Created new remote backup (%d bookmarks)\n", result.Count)
	} else {
		d.logger.Infof("Updated remote backup (%d bookmarks, file ID %s)", result.Count, result.Drive.FileID)
		util.GreenBold.Printf("Updated remote backup (%d bookmarks)\n", result.Count)
	}
}

func (d *Daemon) isRunning() bool {
	if d.cfg.GetPidFile() == "" {
		return false
	}

	pidData, err := os.ReadFile(d.cfg.GetPidFile())
	if err != nil {
		return false
	}

	pid, err := strconv.Atoi(string(pidData))
	if err != nil {
		return false
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	// Send signal 0 to check if process exists
	err = process.Signal(syscall.Signal(0))
	return err == nil
}

func (d *Daemon) writePidFile() error {
	pid := os.Getpid()
	return os.WriteFile(d.cfg.GetPidFile(), []byte(strconv.Itoa(pid)), 0644)
}

func (d *Daemon) cleanup() {
	if d.cfg.GetPidFile() != "" {
		os.Remove(d.cfg.GetPidFile())
	}
}

func (d *Daemon) Status() error {
	if d.isRunning() {
		pidData, _ := os.ReadFile(d.cfg.GetPidFile())
		util.Green.Printf("Daemon is running (PID: %s)\n", string(pidData))
		util.Cyan.Printf("Remote backup file: %s\n", d.cfg.GetBackupName())
		util.Cyan.Printf("Backup interval: %d minutes\n", d.cfg.GetCheckInterval())
		return nil
	} else {
		util.Red.Println("Daemon is not running")
		return fmt.Errorf("daemon is not running")
	}
}
