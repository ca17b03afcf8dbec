package main

import "github.com/shouni/canon-forge-kit/cmd"

func main() {
	cmd.Execute()
}
