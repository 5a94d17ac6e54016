package domain

import "go.trai.ch/zerr"

// Platform selects the pages subdirectory a page is looked up in.
type Platform string

const (
	// PlatformCommon holds pages that apply to every operating system.
	PlatformCommon Platform = "common"
	// PlatformOSX holds pages specific to macOS.
	PlatformOSX Platform = "osx"
	// PlatformLinux holds pages specific to Linux. It is the default for every non-Apple host.
	PlatformLinux Platform = "linux"
)

// HostPlatform is the platform tag of the operating system this binary was built for.
// It is fixed at compile time, see platform_darwin.go and platform_other.go.
const HostPlatform = hostPlatform

// ParsePlatform validates an OS-specific platform override.
// The empty string yields HostPlatform. "common" is rejected since it is always tried first.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case "":
		return HostPlatform, nil
	case PlatformOSX, PlatformLinux:
		return Platform(s), nil
	default:
		return "", zerr.With(ErrInvalidPlatform, "platform", s)
	}
}

func (p Platform) String() string {
	return string(p)
}
