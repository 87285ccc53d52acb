package main

import "github.com/ledgerlight/runway/cmd"

func main() {
	cmd.Execute()
}
