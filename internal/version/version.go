// Package version holds the toolkit version, overridable at link time:
//
//	go build -ldflags "-X maskprep/internal/version.Version=v1.2.3" ./cmd/...
package version

var Version = "dev"
