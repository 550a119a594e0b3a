package main

import (
	"gproassist/cmd/gpro-cli/cmd"
)

func main() {
	cmd.Execute()
}
