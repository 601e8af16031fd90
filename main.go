package main

import "github.com/pagelab/ppagerank/cmd"

func main() {
	cmd.Execute()
}
