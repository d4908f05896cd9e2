package main

import "deps.me/ytup/internal/cli"

func main() {
	cli.Execute()
}
