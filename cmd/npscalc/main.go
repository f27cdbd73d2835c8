package main

import (
	"github.com/npsgo/pension-calculator/internal/cli"
)

func main() {
	cli.Execute()
}
