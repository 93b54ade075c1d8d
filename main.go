package main

import "github.com/jsphweid/melowave/cmd"

func main() {
	cmd.Execute()
}
