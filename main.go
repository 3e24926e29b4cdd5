package main

import (
	"github.com/fitzmx6/portfolio/cmd"
)

func main() {
	cmd.Execute()
}
