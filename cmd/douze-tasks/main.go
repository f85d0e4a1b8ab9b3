// Command douze-tasks runs the DOuze build tasks.
//
// Usage:
//
//	go run ./cmd/douze-tasks [flags] [tasks]
//
// Without tasks, format runs.
package main

import (
	"fmt"
	"os"

	"github.com/WithIO/DOuze"
	"github.com/WithIO/DOuze/tasks"
	"github.com/goyek/goyek/v3"
	"github.com/goyek/x/boot"
)

func main() {
	cfg, err := douze.Load(douze.ProjectRoot(), os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	t := tasks.New(cfg)
	goyek.SetDefault(t.Format)
	boot.Main()
}
