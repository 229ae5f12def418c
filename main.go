package main

import "github.com/ethlens/ethlens/cmd"

func main() {
	cmd.Execute()
}
