// Package main provides a command line launcher that shows a popup grid
// built from an items file and prints the chosen item.
package main

func main() {
	Execute()
}
