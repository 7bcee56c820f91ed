package main

import "github.com/proposta-ai/propgen/cmd"

func main() {
	cmd.Execute()
}
