package main

import "edet/cmd/edet-cli/cmd"

func main() {
	cmd.Execute()
}
