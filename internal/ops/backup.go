package ops

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hpungsan/kprune/internal/errors"
	"github.com/hpungsan/kprune/internal/prompt"
)

// backupTimestampFormat is the local-time suffix on backup filenames.
const backupTimestampFormat = "20060102-150405"

// Backup offers to copy the config file to <path>.backup.<timestamp>
// before it is overwritten (default yes). Returns the backup path, or ""
// if the user declined. An existing backup with the same name is replaced.
func Backup(path string, asker *prompt.Asker, out io.Writer, now func() time.Time) (string, error) {
	create, err := asker.YesOrNo(fmt.Sprintf("Create backup of '%s'?", path), true)
	if err != nil {
		return "", err
	}
	if !create {
		return "", nil
	}

	backupPath := fmt.Sprintf("%s.backup.%s", path, now().Format(backupTimestampFormat))
	if err := copyFile(path, backupPath); err != nil {
		return "", errors.NewIOFailure(fmt.Errorf("create backup: %w", err))
	}

	fmt.Fprintf(out, "Created backup: %s\n", backupPath)
	return backupPath, nil
}

// copyFile copies src to dst verbatim, carrying over the file mode and
// modification time. dst is overwritten if it exists.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return err
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
