package main

import "github.com/golangdaddy/topgear/cmd"

func main() {
	cmd.Execute()
}
