package parquetio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/providerstats/internal/model"
)

// WriteFile writes rows to path. The file is written beside path and
// renamed into place, so a failed export never leaves a partial snapshot.
func WriteFile(path string, rows []model.ServiceLineRow) (int, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*.parquet")
	if err != nil {
		return 0, fmt.Errorf("create snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := parquet.NewGenericWriter[model.ServiceLineRow](tmp)
	n, err := w.Write(rows)
	if err != nil {
		tmp.Close()
		return 0, fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("close parquet writer: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, fmt.Errorf("rename snapshot: %w", err)
	}
	return n, nil
}
