package commands

// FindNonASCII exports findNonASCII for testing.
var FindNonASCII = findNonASCII //nolint:gochecknoglobals // test export

// ValidateUTF8 exports validateUTF8 for testing.
var ValidateUTF8 = validateUTF8 //nolint:gochecknoglobals // test export
