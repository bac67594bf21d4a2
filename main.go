package main

import "github.com/rangepick/rangepick/cmd"

func main() {
	cmd.Execute()
}
