package main

import "fnc/cmd"

func main() {
	cmd.Execute()
}
