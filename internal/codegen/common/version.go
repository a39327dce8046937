package common

import (
	"fmt"
	"strings"
)

// Version is set via ldflags at build time:
// -ldflags "-X github.com/Alia5/sigexport/internal/codegen/common.Version=x.y.z"
var Version = ""

// GetVersion returns the build version without a leading "v", or
// "0.0.1-dev" for development builds.
func GetVersion() (string, error) {
	if Version == "" {
		return "0.0.1-dev", nil
	}

	version := strings.TrimPrefix(Version, "v")
	base := strings.SplitN(version, "-", 2)[0]
	if strings.Count(base, ".") != 2 {
		return "", fmt.Errorf("invalid version format: %s (expected x.y.z)", Version)
	}
	return version, nil
}
