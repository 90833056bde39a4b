package main

import "railbook/internal/cli"

func main() {
	cli.Execute()
}
