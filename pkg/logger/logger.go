// Package logger is a process wide key/value logger backed by zap.
//
// Call sites pass a message followed by alternating keys and values:
//
//	logger.Error("upload failed", "key", key, "err", err)
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	TargetStdout = "stdout"
	TargetFile   = "file"
)

type Config struct {
	Filename   string   `yaml:"file_name"`
	LogLevel   string   `yaml:"level"`
	Targets    []string `yaml:"targets"`
	MaxSize    int      `yaml:"max_size_in_mb"`
	MaxBackups int      `yaml:"max_backups"`
	Compress   bool     `yaml:"compress"`
}

var (
	mu     sync.RWMutex
	global = New(&Config{LogLevel: "info", Targets: []string{TargetStdout}})
)

// New builds a sugared logger for cfg. Unknown levels fall back to info and an
// empty target list falls back to stdout.
func New(cfg *Config) *zap.SugaredLogger {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	targets := cfg.Targets
	if len(targets) == 0 {
		targets = []string{TargetStdout}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := make([]zapcore.Core, 0, len(targets))
	for _, t := range targets {
		switch t {
		case TargetFile:
			if cfg.Filename == "" {
				continue
			}
			w := zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.Filename,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				Compress:   cfg.Compress,
			})
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), w, level))
		default:
			consoleCfg := encCfg
			consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder
			cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg),
				zapcore.Lock(os.Stdout), level))
		}
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

// InitGlobalLogger replaces the process wide logger.
func InitGlobalLogger(cfg *Config) {
	l := New(cfg)

	mu.Lock()
	defer mu.Unlock()
	global = l
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()

	return global
}

func Debug(msg string, keysAndValues ...any) {
	get().Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	get().Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	get().Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	get().Errorw(msg, keysAndValues...)
}

// Sync flushes buffered entries. Call it before the process exits.
func Sync() {
	_ = get().Sync()
}
