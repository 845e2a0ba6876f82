// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command intcode runs, inspects and debugs intcode programs.
package main

func main() {
	Execute()
}
