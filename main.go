package main

import "monitorctl/cmd"

func main() {
	cmd.Execute()
}
