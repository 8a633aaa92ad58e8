package main

import (
	"sqlite-header/cli"
)

func main() {
	cli.Start()
}
