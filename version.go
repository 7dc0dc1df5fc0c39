package guestlens

import "fmt"

const (
	major = 0
	minor = 3
	patch = 1
	meta  = ""
)

// StringVersion returns the semantic version of the build.
func StringVersion() string {
	v := fmt.Sprintf("%d.%d.%d", major, minor, patch)
	if meta != "" {
		v = fmt.Sprintf("%s-%s", v, meta)
	}

	return v
}
