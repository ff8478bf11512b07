// Command amr is the command-line interface for microorganism name
// resolution and susceptibility interpretation.
package main

import "github.com/openamr/amr/internal/interfaces/cli"

func main() {
	cli.Execute()
}
