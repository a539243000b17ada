package cmd

import "github.com/go-logr/logr"

// log is the package-level logger used by commands. PersistentPreRunE
// replaces it according to --verbose and --log-format; tests can swap it
// for one writing to a buffer.
var log = logr.Discard()
