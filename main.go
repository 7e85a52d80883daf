package main

import "github.com/theirongolddev/pointplan/cmd"

func main() {
	cmd.Execute()
}
