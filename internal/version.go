// Package internal holds build metadata shared by the executables.
package internal

// Version is the current release of trieproof-go.
const Version = "0.1.0"
