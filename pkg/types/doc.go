// Package types defines the Store interface, entity types, and standard
// errors for the habits-manager storage and domain layers.
package types
