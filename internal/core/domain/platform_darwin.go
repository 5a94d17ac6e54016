//go:build darwin

package domain

const hostPlatform = PlatformOSX
