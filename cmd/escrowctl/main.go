package main

import (
	"escrowctl/internal/adapter/cli"
)

func main() {
	cli.Execute()
}
