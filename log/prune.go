package log

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/catchup-cli/catchup/filesystem"
	"github.com/catchup-cli/catchup/where"
	"github.com/spf13/afero"
)

// Retention is how long daily log files are kept.
const Retention = 7 * 24 * time.Hour

// CollectGarbage deletes daily log files older than retention.
// It returns how many files were removed.
func CollectGarbage(retention time.Duration) int {
	cutoff := time.Now().Add(-retention)
	removed := 0

	_ = afero.Walk(filesystem.API(), where.Logs(), func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || filepath.Ext(path) != ".log" {
			return nil
		}

		day, err := time.ParseInLocation("2006-01-02", strings.TrimSuffix(info.Name(), ".log"), time.Local)
		if err != nil || !day.Before(cutoff) {
			return nil
		}

		if filesystem.API().Remove(path) == nil {
			removed++
		}
		return nil
	})

	return removed
}
