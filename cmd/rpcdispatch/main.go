package main

import "github.com/vietddude/rpcdispatch/internal/cli"

func main() {
	cli.Execute()
}
