package main

// Process exit codes.
const (
	// ExitSuccess is returned on success, including zero surviving records.
	ExitSuccess = 0
	// ExitInputError is returned for I/O, parse, schema, flag, or filter
	// expression errors.
	ExitInputError = 1
)
