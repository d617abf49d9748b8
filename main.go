package main

import "github.com/yooung1/sonntag/cmd"

func main() {
	cmd.Execute()
}
