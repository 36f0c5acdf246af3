package main

import (
	"vlivego/cmd/vlive-cli/cmd"
)

func main() {
	cmd.Execute()
}
