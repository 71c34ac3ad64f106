package main

import "patchverk/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
