//go:build !debug
// +build !debug

package compute

// assertFinite is only active in debug builds.
func assertFinite[T Float](Vector[T], string) {}

const debugBuild = false
