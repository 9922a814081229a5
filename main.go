package main

import "github.com/example/faceattend/cmd"

func main() {
	cmd.Execute()
}
