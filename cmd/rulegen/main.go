// Package main is the rulegen CLI: it reads a CSV dataset and a YAML decision
// tree, extracts rule features, and writes them back out as CSV columns.
package main

func main() {
	Execute()
}
