package main

import "deckforge/cmd"

func main() {
	cmd.Execute()
}
