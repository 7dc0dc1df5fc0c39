package config

import "fmt"

// Error is returned for every failure while loading the configuration.
type Error struct {
	reason string
}

func (e Error) Error() string {
	return fmt.Sprintf("config error: %s", e.reason)
}
