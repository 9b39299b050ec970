package main

import "github.com/samsaffron/md2html/cmd"

func main() {
	cmd.Execute()
}
