package main

import "doctools/cmd/doctools-cli/cmd"

func main() {
	cmd.Execute()
}
