// Package types defines the House entity, the HouseBuilder interface,
// configuration, and the standard errors for the housebuilder demo.
// Builder and director implementations live under internal/ and depend
// only on the contracts declared here.
package types
