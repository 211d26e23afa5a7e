// Package version provides build information and the host platform version string
package version

import (
	"runtime"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// Set via -ldflags "-X 'snapbridge/internal/core/version.version=v0.1.0'
// -X 'snapbridge/internal/core/version.commit=abcd' -X 'snapbridge/internal/core/version.date=2026-10-01'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information
func Info() BuildInfo {
	return BuildInfo{
		Service: "snapbridge-host",
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
	}
}

// Platform reports "<OS> <release>" for the running host, e.g. "Linux 6.8.0"
type Platform struct {
	// GOOS overrides runtime.GOOS
	GOOS string
	// Release overrides the kernel release lookup
	Release func() (string, error)
}

// Version implements the bridge Platform port
// the OS name alone is returned when the release cannot be read
func (p Platform) Version() string {
	goos := p.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	name := osName(goos)

	release := p.Release
	if release == nil {
		release = kernelRelease
	}
	rel, err := release()
	rel = strings.TrimSpace(rel)
	if err != nil || rel == "" {
		return name
	}
	return name + " " + rel
}

var osNames = map[string]string{
	"darwin":  "macOS",
	"ios":     "iOS",
	"freebsd": "FreeBSD",
	"netbsd":  "NetBSD",
	"openbsd": "OpenBSD",
}

func osName(goos string) string {
	if n, ok := osNames[goos]; ok {
		return n
	}
	return cases.Title(language.Und).String(goos)
}
