package main

import "github.com/barkbuff/blsh/cmd"

func main() {
	cmd.Execute()
}
