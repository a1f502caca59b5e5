package main

import "zcalc/cmd/zcalc/cmd"

func main() {
	cmd.Execute()
}
