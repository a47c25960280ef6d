package main

import (
	"github.com/simplesurance/interpolate/internal/command"
)

func main() {
	command.Execute()
}
