// Command recruit runs the terminal application form.
package main

import "github.com/tezosjh/recruit/internal/cli"

func main() {
	cli.Execute()
}
