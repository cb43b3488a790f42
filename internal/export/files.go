package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"muchong-engine/internal/domain"
)

// WriteFiles writes both artifacts into dir concurrently and returns their
// paths. Either failure aborts the whole export; partially written files
// are left for the user to inspect.
func WriteFiles(dir, prefix string, items []domain.RecruitmentItem) (csvPath, jsonPath string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("%w: create export dir: %v", domain.ErrExport, err)
	}

	now := time.Now()
	csvPath = filepath.Join(dir, Filename(prefix, "csv", now))
	jsonPath = filepath.Join(dir, Filename(prefix, "json", now))

	var g errgroup.Group
	g.Go(func() error { return writeFile(csvPath, items, WriteCSV) })
	g.Go(func() error { return writeFile(jsonPath, items, WriteJSON) })
	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return csvPath, jsonPath, nil
}

func writeFile(path string, items []domain.RecruitmentItem, write func(w io.Writer, items []domain.RecruitmentItem) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", domain.ErrExport, filepath.Base(path), err)
	}

	if err := write(f, items); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", domain.ErrExport, filepath.Base(path), err)
	}
	return nil
}
