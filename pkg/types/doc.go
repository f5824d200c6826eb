// Package types defines the domain entities, configuration, Store interface,
// and standard errors for the trolley cart core.
package types
