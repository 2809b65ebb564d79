package main

import "calmnetconfig/cmd"

func main() {
	cmd.Execute()
}
