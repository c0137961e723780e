package main

import "sipli/cmd"

func main() {
	cmd.Execute()
}
