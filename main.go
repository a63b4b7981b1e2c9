// Package main is the entry point for the lolmetrics CLI tool, which
// aggregates exported League of Legends match files and computes player/team
// performance metrics.
package main

import "github.com/aezurly/go-lol-metrics/cmd"

func main() {
	cmd.Execute()
}
