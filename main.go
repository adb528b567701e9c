package main

import "github.com/agrimind/landing/cmd"

func main() {
	cmd.Execute()
}
