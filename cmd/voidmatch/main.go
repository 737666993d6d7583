package main

import "github.com/vchlab/voidmatch/cmd/voidmatch/cmd"

func main() {
	cmd.Execute()
}
