package main

import "github.com/Arma75/dtogen/cmd"

func main() {
	cmd.Execute()
}
