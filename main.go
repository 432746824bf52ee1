package main

import (
	"os"

	"github.com/viant/asc-mcp/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
