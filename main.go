package main

import "github.com/wahlandcase/zpick/cmd"

func main() {
	cmd.Execute()
}
