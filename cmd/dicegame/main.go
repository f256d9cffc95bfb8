package main

import "github.com/mcoot/dicegame-go/internal/cli"

func main() {
	cli.Execute()
}
