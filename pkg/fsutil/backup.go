package fsutil

import (
	"context"
	"fmt"
	"os"
)

// BackupSuffix is appended to a note's path for its pre-fix backup.
const BackupSuffix = ".notelint.bak"

// BackupPath returns the sidecar backup path for a note.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies a note to its sidecar backup before fixing.
// Idempotent: an existing backup is never overwritten, so repeated fix
// runs keep the original content from the first run.
func CreateBackup(ctx context.Context, path string) (bool, error) {
	backupPath := BackupPath(path)
	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	}

	content, snap, err := ReadFile(ctx, path)
	if err != nil {
		return false, fmt.Errorf("backup %s: %w", path, err)
	}
	if err := WriteAtomic(ctx, backupPath, content, snap.Mode); err != nil {
		return false, fmt.Errorf("backup %s: %w", path, err)
	}
	return true, nil
}

// RemoveBackup deletes a note's sidecar backup if present.
func RemoveBackup(path string) (bool, error) {
	err := os.Remove(BackupPath(path))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("remove backup: %w", err)
	}
	return true, nil
}
