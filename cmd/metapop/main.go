// Command metapop computes the probability that a species occupying a
// two-patch landscape is permanently lost within a given number of years.
package main

import "github.com/katalvlaran/metapop/cmd/metapop/cmd"

func main() {
	cmd.Execute()
}
