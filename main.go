package main

import "tosec-parser/internal/cli"

func main() {
	cli.Execute()
}
