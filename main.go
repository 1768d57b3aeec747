package main

import "github.com/cracklab-io/attacksim/cmd"

func main() {
	cmd.Execute()
}
