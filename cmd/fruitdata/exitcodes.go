package main

// Exit codes. Validation rejections (empty name, bad dimensions,
// duplicates, remove misses) are not errors and exit with ExitSuccess.
const (
	ExitSuccess = 0 // Success, including rejected-but-handled input
	ExitError   = 1 // Argument-parsing failure or save failure
)
