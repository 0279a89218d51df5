package main

import (
	"audiokit/cmd"
)

func main() {
	cmd.Execute()
}
