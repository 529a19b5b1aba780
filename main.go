package main

import (
	"os"

	"nifty-filter/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
