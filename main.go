package main

import "github/w3kit/go-smart-account/cmd"

func main() {
	cmd.Execute()
}
