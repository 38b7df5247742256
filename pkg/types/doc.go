// Package types defines the entity types and standard errors shared by the
// community organizer store and CLI.
package types
