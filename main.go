package main

import "github.com/viktsys/brvmwatch/cmd"

func main() {
	cmd.Execute()
}
