package main

import "github.com/ib2756/MPO-calculation-for-CNS-targeting-compounds/cmd"

func main() {
	cmd.Execute()
}
