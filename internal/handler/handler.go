package handler

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/drivemark/drivemark/internal/bookmarks"
	"github.com/drivemark/drivemark/internal/bookmarks/providers"
	"github.com/drivemark/drivemark/internal/config"
	"github.com/drivemark/drivemark/internal/drive"
	"github.com/drivemark/drivemark/internal/mail"
	"github.com/drivemark/drivemark/internal/snapshot"
	"github.com/drivemark/drivemark/internal/util"
)

// RunResult describes the outcome of one backup run
type RunResult struct {
	Count   int
	Hash    string
	Skipped bool
	Drive   *drive.Result
	Archive string
}

// BuildRegistry registers every known provider and applies the
// configured provider settings. When nothing ends up enabled the
// sample provider is switched on so a bare run still produces a
// backup.
func BuildRegistry(cfg config.ConfigProvider) (*bookmarks.Registry, error) {
	registry := bookmarks.NewRegistry()

	all := []bookmarks.Provider{
		providers.NewSampleProvider(),
		providers.NewFileProvider(),
		providers.NewNetscapeProvider(),
		providers.NewSQLiteProvider(),
	}
	for _, p := range all {
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}

	for _, pc := range cfg.GetProviders() {
		if !pc.Enabled {
			continue
		}
		if err := registry.Configure(pc.Name, pc); err != nil {
			return nil, err
		}
	}

	if len(registry.GetEnabled()) == 0 {
		if err := registry.Configure("sample", bookmarks.ProviderConfig{Name: "sample", Enabled: true}); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

// DriveBackup authenticates against Google Drive using the configured
// client secrets and the cached token, and returns the uploader. A
// missing secrets file fails before any network call; a missing token
// asks the user to run the auth flow.
func DriveBackup(ctx context.Context, cfg config.ConfigProvider) (*drive.Backup, error) {
	if _, err := os.Stat(cfg.GetCredentialsPath()); err != nil {
		return nil, fmt.Errorf("client secrets file not found at %s, run 'drivemark configure' first: %w",
			cfg.GetCredentialsPath(), err)
	}

	oauthCfg, err := drive.LoadSecrets(cfg.GetCredentialsPath(), cfg.GetCallbackPort())
	if err != nil {
		return nil, err
	}

	token, err := drive.LoadToken()
	if err != nil {
		return nil, fmt.Errorf("no cached token, run 'drivemark auth' first: %w", err)
	}

	service, err := drive.NewService(ctx, oauthCfg, token)
	if err != nil {
		return nil, err
	}

	return drive.NewBackup(service, cfg.GetBackupName()), nil
}

// Run performs one full backup: gather, serialize, validate, upload,
// then the optional archive copy and mail notification. The snapshot
// temp file is removed on every path. When lastHash matches the new
// snapshot's content hash the upload is skipped (daemon runs use this,
// one-shot runs pass "").
func Run(ctx context.Context, cfg config.ConfigProvider, registry *bookmarks.Registry, backup *drive.Backup, lastHash string) (*RunResult, error) {
	util.Cyan.Println("Scanning local bookmarks...")
	marks, err := registry.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("gathering bookmarks: %w", err)
	}
	util.Cyan.Printf("Found %d bookmarks to backup\n", len(marks))

	util.Cyan.Println("Preparing backup file...")
	snap, err := snapshot.Write(marks)
	if err != nil {
		return nil, err
	}
	defer func() { _ = snap.Close() }()

	util.Cyan.Printf("Temporary backup file created at: %s (%d bytes)\n", snap.Path, snap.Size)

	if !snapshot.IsValid(snap.Path) {
		return nil, fmt.Errorf("snapshot failed validation, refusing to upload %s", snap.Path)
	}

	hash := contentHash(snap.Path)
	result := &RunResult{Count: snap.Count, Hash: hash}

	if lastHash != "" && hash == lastHash {
		result.Skipped = true
		return result, nil
	}

	driveResult, err := backup.Perform(ctx, snap)
	if err != nil {
		return nil, err
	}
	result.Drive = driveResult

	if dir := cfg.GetArchivePath(); dir != "" {
		archived, err := snap.Archive(dir, cfg.GetBackupName())
		if err != nil {
			// Archive copies are best effort, the remote backup already succeeded
			util.LogError(util.FileError, "writing archive copy", err)
		} else {
			result.Archive = archived
			util.Cyan.Printf("Archive copy written to %s\n", archived)
		}
	}

	if mailCfg := cfg.GetMail(); mailCfg.Enabled {
		notifier := mail.NewSMTPNotifier(mailCfg)
		if err := notifier.Notify(snap.Path, snap.Count, config.DefaultTimeout); err != nil {
			util.LogError(util.MailError, "sending notification", err)
		}
	}

	return result, nil
}

func contentHash(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
