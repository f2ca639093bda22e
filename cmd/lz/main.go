package main

import "github.com/tychoish/lazy/cmd/lz/cmd"

func main() {
	cmd.Execute()
}
