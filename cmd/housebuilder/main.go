// Package main provides the housebuilder CLI.
package main

import "github.com/mesh-intelligence/housebuilder/internal/cli"

func main() {
	cli.Execute()
}
