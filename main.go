package main

import "github.com/theirongolddev/spendit/cmd"

func main() {
	cmd.Execute()
}
