package domain

import "strings"

// PlatformName returns the display name of an operating system as reported by runtime.GOOS.
func PlatformName(goos string) string {
	switch goos {
	case "linux":
		return "Linux"
	case "darwin":
		return "Darwin"
	case "windows":
		return "Windows"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	case "":
		return "Unknown"
	default:
		return strings.ToUpper(goos[:1]) + goos[1:]
	}
}

// Summary is reported after a successful run.
type Summary struct {
	Generator string
	BuildType BuildType
	Platform  string
}
