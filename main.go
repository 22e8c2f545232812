package main

import (
	"fmt"
	"os"
	"strings"
)

var version = "devel"

func main() {
	cli, command := parseArgs(os.Args[1:])

	switch {
	case strings.HasPrefix(command, "run"):
		runMain(cli.Run)
	case strings.HasPrefix(command, "rom-infos"):
		romInfosMain(cli.RomInfos)
	case command == "version":
		fmt.Println("famicore", version)
	}
}
