package main

import "tabpager/internal/cmd"

// Entry point for the application
func main() {
	cmd.Execute()
}
