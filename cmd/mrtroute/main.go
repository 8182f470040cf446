// Command mrtroute searches rail routes from the command line.
package main

import "github.com/randytsao24/mrtroute/cmd/mrtroute/cmd"

func main() {
	cmd.Execute()
}
