package main

import (
	"fmt"
	"os"

	"github.com/containifyci/pixbench/cmd"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	repo    = "github.com/containifyci/pixbench"
)

func main() {
	cmd.SetVersionInfo(version, commit, date, repo)
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Main Error: %v\n", err)
		os.Exit(1)
	}
}
