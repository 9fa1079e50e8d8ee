package main

import "calctools/cmd/calctools/commands"

func main() {
	commands.Execute()
}
