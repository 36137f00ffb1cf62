package main

import "github.com/itsmostafa/mkstat/cmd"

func main() {
	cmd.Execute()
}
