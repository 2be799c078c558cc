package main

import (
	"github.com/daedaleanai/lcc/cmd"
)

func main() {
	cmd.Execute()
}
