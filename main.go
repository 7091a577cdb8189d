package main

import "github.com/heathj/goforms/cli"

func main() {
	cli.Execute()
}
