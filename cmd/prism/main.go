package main

import (
	"github.com/just-one-coder/flux-prism/internal/cli"
)

func main() {
	cli.Execute()
}
