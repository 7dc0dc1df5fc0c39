package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"guestlens/config"
	"guestlens/internal/application/usecase"
	"guestlens/internal/infrastructure/minio"
	"guestlens/pkg/logger"
)

type downloadArgs struct {
	configPath string
	outDir     string
	yes        bool
}

func HandleDownload(args []string) {
	opts, err := parseDownloadArgs(args)
	if err != nil {
		ExitOnError(err)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)
	defer logger.Sync()

	if opts.outDir == "" {
		opts.outDir = cfg.Download.OutDir
	}

	minIOClient, err := minio.New(cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	downloader := usecase.NewDownloader(
		minio.NewLister(minIOClient.MinioClient, &cfg.MinIO),
		minio.NewGetter(minIOClient.MinioClient, &cfg.MinIO),
		cfg.Download.Concurrency,
	)

	plan, err := downloader.Plan(ctx, opts.outDir)
	if err != nil {
		ExitOnError(fmt.Errorf("listing originals: %w", err))
	}

	logger.Info("download plan", "total", plan.Total, "present", plan.Present(), "pending", len(plan.Pending),
		"out_dir", opts.outDir)

	if len(plan.Pending) == 0 {
		logger.Info("nothing to download")

		return
	}

	if len(plan.Pending) > cfg.Download.ConfirmAbove && !opts.yes &&
		!confirm(os.Stdin, os.Stdout, len(plan.Pending)) {
		logger.Info("download cancelled")

		return
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		ExitOnError(err)
	}

	start := time.Now()
	every := cfg.Download.ProgressEveryFiles
	report := downloader.Download(ctx, opts.outDir, plan.Pending, func(done, total int, bytes int64) {
		if done%every == 0 || done == total {
			logger.Info("download progress", "done", done, "total", total, "bytes", bytes)
		}
	})

	logger.Info("download finished", "succeeded", report.Succeeded, "failed", len(report.Failed),
		"bytes", report.Bytes, "elapsed", time.Since(start).Round(time.Second))

	if len(report.Failed) > 0 {
		path, err := usecase.WriteFailures(opts.outDir, report.Failed)
		if err != nil {
			logger.Error("failed to write failed keys", "err", err)
		}
		ExitOnError(fmt.Errorf("%d downloads failed, see %s", len(report.Failed), path))
	}
}

func parseDownloadArgs(args []string) (downloadArgs, error) {
	var opts downloadArgs
	var positional []string

	for _, arg := range args[min(2, len(args)):] {
		switch arg {
		case "-y", "--yes":
			opts.yes = true
		default:
			if strings.HasPrefix(arg, "-") {
				return downloadArgs{}, fmt.Errorf("unknown flag %q", arg)
			}
			positional = append(positional, arg)
		}
	}

	switch len(positional) {
	case 2:
		opts.outDir = positional[1]
		fallthrough
	case 1:
		opts.configPath = positional[0]
	default:
		return downloadArgs{}, errors.New("usage: guestlens download <config.yml> [out-dir] [-y]")
	}

	return opts, nil
}

// confirm asks for an explicit yes before a large download.
func confirm(in io.Reader, out io.Writer, pending int) bool {
	fmt.Fprintf(out, "About to download %d files. Continue? [y/N] ", pending) //nolint

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
