package main

import "github.com/lanternsec/secsweep/pkg/cli"

func main() {
	cli.Execute()
}
