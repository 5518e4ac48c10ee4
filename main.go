package main

import "github.com/nathanhack/golay/cmd"

func main() {
	cmd.Execute()
}
