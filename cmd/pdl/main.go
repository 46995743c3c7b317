package main

import (
	"github.com/daite/pdl/cmd/pdl/cmd"
)

func main() {
	cmd.Execute()
}
