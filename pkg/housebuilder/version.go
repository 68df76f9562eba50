// Package housebuilder holds build metadata for the housebuilder module.
package housebuilder

// Version is the semantic version of the housebuilder CLI.
const Version = "0.1.0"

// ModulePath is the Go module path of this repository.
const ModulePath = "github.com/mesh-intelligence/housebuilder"
