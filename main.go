package main

import (
	"github.com/mj1618/macos-computer/cmd"
	_ "github.com/mj1618/macos-computer/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}
