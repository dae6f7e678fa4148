/*
Package application is a library for building trieproof executables.

Encoding

This module implements the JSON envelope proofs are exchanged in
(ProofMessage) and helpers to write it to and read it from files.

Logger

This module implements a generic logging system that can be used by any
trieproof executable.

Config

AppConfig, CommonConfig and the TOML ConfigLoader are shared by the
executables' configurations.
*/
package application
