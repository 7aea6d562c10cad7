package main

import (
	"github.com/ghdwlsgur/gamegraph/cmd"
)

var version = "1.0.0"

func main() {
	cmd.Execute(version)
}
