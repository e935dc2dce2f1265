package main

import (
	"github.com/swaralipi/swaralipi/cmd"
)

func main() {
	cmd.Execute()
}
