package main

import "master-reference/cmd"

func main() {
	cmd.Execute()
}
