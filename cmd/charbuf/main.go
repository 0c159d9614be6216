package main

import "github.com/iw2rmb/charbuf/internal/cli"

func main() {
	cli.Execute()
}
