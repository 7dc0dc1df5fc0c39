package commands

import (
	"os"

	"guestlens/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("guestlens error", "err", err.Error())
	logger.Sync()
	os.Exit(1)
}
