// Command hexcast casts I Ching hexagrams.
package main

import "github.com/papapumpkin/hexcast/cmd"

func main() {
	cmd.Execute()
}
