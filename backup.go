package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/azazahmad08/kayesbackend/logging"
)

// startDailyBackupAtFixedTime backs up the uploads directory daily at a fixed
// hour and removes backups older than the retention window.
func startDailyBackupAtFixedTime(srcDir, backupDir string, retention time.Duration, hour, min int) {
	logger := logging.New("backup")
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		logger.Info("next uploads backup scheduled", "at", next.Format(time.RFC3339))
		time.Sleep(next.Sub(now))

		destDir := filepath.Join(backupDir, time.Now().Format("2006-01-02_15-04-05"))
		if err := copyDir(srcDir, destDir); err != nil {
			logger.Error("uploads backup failed", "error", err)
		} else {
			logger.Info("uploads backed up", "dest", destDir)
		}

		cleanupOldBackups(backupDir, retention, logger)
	}
}

// copyDir recursively copies a folder
func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
		} else if err := copyFile(srcPath, destPath); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies a single file
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup folders older than the retention duration
func cleanupOldBackups(backupDir string, retention time.Duration, logger *slog.Logger) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		logger.Error("read backup directory failed", "error", err)
		return
	}

	cutoff := time.Now().Add(-retention)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				logger.Error("remove old backup failed", "path", folderPath, "error", err)
			} else {
				logger.Info("removed old backup", "path", folderPath)
			}
		}
	}
}
