package version

import (
	"errors"
	"runtime"
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	bi := Info()
	if bi.Service != "snapbridge-host" || bi.Version == "" || bi.Go != runtime.Version() {
		t.Fatalf("info = %+v", bi)
	}
}

func TestPlatform_Version(t *testing.T) {
	fixed := func(s string, err error) func() (string, error) {
		return func() (string, error) { return s, err }
	}
	cases := []struct {
		name string
		p    Platform
		want string
	}{
		{"linux", Platform{GOOS: "linux", Release: fixed("6.8.0-45-generic\n", nil)}, "Linux 6.8.0-45-generic"},
		{"darwin", Platform{GOOS: "darwin", Release: fixed("23.4.0", nil)}, "macOS 23.4.0"},
		{"freebsd", Platform{GOOS: "freebsd", Release: fixed("14.0-RELEASE", nil)}, "FreeBSD 14.0-RELEASE"},
		{"release error", Platform{GOOS: "windows", Release: fixed("", errors.New("nope"))}, "Windows"},
		{"blank release", Platform{GOOS: "plan9", Release: fixed("  ", nil)}, "Plan9"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.p.Version(); got != c.want {
				t.Fatalf("Version() = %q want %q", got, c.want)
			}
		})
	}
}

func TestPlatform_DefaultsToRuntime(t *testing.T) {
	got := Platform{}.Version()
	if !strings.HasPrefix(got, osName(runtime.GOOS)) {
		t.Fatalf("Version() = %q, want prefix %q", got, osName(runtime.GOOS))
	}
}
