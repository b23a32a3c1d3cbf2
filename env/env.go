// Package env must be imported before any gorgonia package so the moving GC
// check in go4.org/unsafe/assume-no-moving-gc sees the override.
package env

import (
	"os"
	"runtime"
	"strings"
)

const assumeNoMovingGC = "ASSUME_NO_MOVING_GC_UNSAFE_RISK_IT_WITH"

func init() {
	if _, ok := os.LookupEnv(assumeNoMovingGC); ok {
		return
	}
	os.Setenv(assumeNoMovingGC, goVersion(runtime.Version()))
}

// goVersion trims a toolchain version such as "go1.24.2" or "go1.25rc1" to "go1.24".
func goVersion(version string) string {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return version
	}
	minor := parts[1]
	if i := strings.IndexFunc(minor, func(r rune) bool { return r < '0' || r > '9' }); i >= 0 {
		minor = minor[:i]
	}
	return parts[0] + "." + minor
}
