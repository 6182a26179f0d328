package main

import "github.com/fitlog/cmd"

func main() {
	cmd.Execute()
}
