package main

import "github.com/mouse-blink/linemark/cmd"

func main() {
	cmd.Execute()
}
