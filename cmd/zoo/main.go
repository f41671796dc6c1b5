// Package main provides the entry point for the zoo CLI.
//
// zoo builds the farm roster (a cat, a dog and a cow) and prints one
// report per animal, then waits for Enter before exiting.
//
// Usage:
//
//	zoo
//	zoo --format markdown --no-pause
//	zoo call dog
//
// See --help for all available options.
package main

// main is the entry point for zoo.
func main() {
	Execute()
}
