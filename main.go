package main

import (
	_ "embed"
	"strings"

	"github.com/chatreplay/chatreplay/cmd"
)

//go:embed VERSION
var version string

func main() {
	cmd.SetVersion(strings.TrimSpace(version))
	cmd.Execute()
}
