package main

import "github.com/theirongolddev/wishsplit/cmd"

func main() {
	cmd.Execute()
}
