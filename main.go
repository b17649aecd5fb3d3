package main

import (
	"isaac-mod-manager/cmd"
)

func main() {
	cmd.Execute()
}
