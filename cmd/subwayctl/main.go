package main

import "github.com/pkordes/subway-planner/internal/cli"

func main() {
	cli.Execute()
}
