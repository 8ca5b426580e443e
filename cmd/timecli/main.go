package main

import "timeboard/internal/client/cli"

func main() {
	cli.Execute()
}
