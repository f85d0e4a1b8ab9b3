// Package poetry provides poetry (Python packaging) tool integration.
package poetry

import (
	"github.com/WithIO/DOuze"
	"github.com/goyek/goyek/v3"
)

// PublishArgs returns the arguments that build the distributable package and
// upload it to the configured registry.
func PublishArgs(cfg douze.PublishConfig) []string {
	return []string{"publish", "--build", "-r", cfg.Registry}
}

// Publish builds and uploads the package found at root.
func Publish(a *goyek.A, cfg douze.PublishConfig, root string) error {
	argv := append([]string{cfg.Bin}, PublishArgs(cfg)...)
	return douze.Exec(a, root, argv)
}
