package main

import "github.com/adey/inkwell/cmd"

func main() {
	cmd.Execute()
}
