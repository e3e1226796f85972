// This program computes proof-of-work difficulty and block reward values
// from the command line.
package main

import "github.com/ardanlabs/explorer/app/tooling/powcalc/cmd"

func main() {
	cmd.Execute()
}
