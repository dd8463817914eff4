package main

import "wealthwise/cmd"

func main() {
	cmd.Execute()
}
