// Command fgbscope inspects FlatGeobuf headers in the terminal.
package main

import "github.com/geostack-labs/fgbscope/internal/cli"

func main() {
	cli.Execute()
}
