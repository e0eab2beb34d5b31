package main

import "github.com/webperf-tools/jsdiet/cmd"

func main() {
	cmd.Execute()
}
