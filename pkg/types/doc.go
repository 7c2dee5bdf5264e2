// Package types defines the Task and Todo domain model, the Persister
// interfaces, the edit Action, and standard error values for the taskpad
// storage system.
package types
