package main

import "vkstatus/internal/cli"

func main() {
	cli.Execute()
}
