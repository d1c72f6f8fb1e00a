package main

import "netifctl/cmd"

func main() {
	cmd.Execute()
}
