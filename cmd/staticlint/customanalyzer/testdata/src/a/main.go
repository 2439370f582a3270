package main

import "os"

func main() {
	defer cleanup()
	os.Exit(1) // want "direct os.Exit call in main function"
}

func cleanup() {
	_ = os.Remove("nonexistent")
}
