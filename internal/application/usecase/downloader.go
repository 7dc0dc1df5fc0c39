package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"guestlens/internal/domain/model"
	"guestlens/internal/domain/repository/minio"
	"guestlens/pkg/logger"
)

// FailedKeysFile lists the keys of the last run that could not be fetched.
const FailedKeysFile = "failed-keys.txt"

// DownloadPlan is the result of comparing the bucket with a local directory.
type DownloadPlan struct {
	Total   int
	Pending []string
}

func (p DownloadPlan) Present() int {
	return p.Total - len(p.Pending)
}

type DownloadReport struct {
	Succeeded int
	Bytes     int64
	Failed    []string
}

// Progress is called after each finished key.
type Progress func(done, total int, bytes int64)

// Downloader copies every original upload into a local directory tree that
// mirrors the bucket keys. Runs can be resumed: files already on disk are
// skipped and partial files never take their final name.
type Downloader struct {
	lister      minio.Lister
	getter      minio.Getter
	concurrency int
}

func NewDownloader(lister minio.Lister, getter minio.Getter, concurrency int) *Downloader {
	if concurrency < 1 {
		concurrency = 1
	}

	return &Downloader{
		lister:      lister,
		getter:      getter,
		concurrency: concurrency,
	}
}

func (d *Downloader) Plan(ctx context.Context, outDir string) (DownloadPlan, error) {
	objects, err := d.lister.List(ctx, model.PrefixOriginals)
	if err != nil {
		return DownloadPlan{}, err
	}

	plan := DownloadPlan{Total: len(objects)}
	for _, obj := range objects {
		dest, err := destination(outDir, obj.Key)
		if err == nil {
			if _, statErr := os.Stat(dest); statErr == nil {
				continue
			}
		}
		plan.Pending = append(plan.Pending, obj.Key)
	}

	return plan, nil
}

// Download fetches keys with at most the configured number of concurrent
// transfers. A failed key is recorded and does not stop the others.
func (d *Downloader) Download(ctx context.Context, outDir string, keys []string, progress Progress) DownloadReport {
	var (
		mu     sync.Mutex
		report DownloadReport
		done   atomic.Int64
		bytes  atomic.Int64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)

	for _, key := range keys {
		g.Go(func() error {
			n, err := d.fetch(gCtx, outDir, key)
			if err != nil {
				logger.Error("failed to download object", "key", key, "err", err)
				mu.Lock()
				report.Failed = append(report.Failed, key)
				mu.Unlock()
			} else {
				bytes.Add(n)
				mu.Lock()
				report.Succeeded++
				mu.Unlock()
			}

			if progress != nil {
				progress(int(done.Add(1)), len(keys), bytes.Load())
			}

			return nil
		})
	}
	_ = g.Wait()

	report.Bytes = bytes.Load()

	return report
}

// WriteFailures stores report.Failed in outDir and returns the file path.
func WriteFailures(outDir string, failed []string) (string, error) {
	path := filepath.Join(outDir, FailedKeysFile)
	if err := os.WriteFile(path, []byte(strings.Join(failed, "\n")), 0o600); err != nil {
		return "", err
	}

	return path, nil
}

func (d *Downloader) fetch(ctx context.Context, outDir, key string) (int64, error) {
	dest, err := destination(outDir, key)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return 0, err
	}

	body, err := d.getter.Get(ctx, key, nil)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".partial-*")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return 0, err
	}

	return n, os.Rename(tmp.Name(), dest)
}

// destination maps key below outDir and refuses keys escaping it.
func destination(outDir, key string) (string, error) {
	dest := filepath.Join(outDir, filepath.FromSlash(key))

	rel, err := filepath.Rel(outDir, dest)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("key %q escapes output directory", key)
	}

	return dest, nil
}
