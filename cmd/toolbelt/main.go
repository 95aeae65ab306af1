package main

import "github.com/birdayz/toolbelt/internal/cli"

func main() {
	cli.Execute()
}
