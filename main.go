package main

import (
	"github.com/EvilEli/cortex-debug/cmd"
)

func main() {
	cmd.Execute()
}
