package main

import (
	"github.com/calshare/calshare/internal/cli"
)

func main() {
	cli.Execute()
}
