// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the client services, the local key-value
// storage, and the server gateway into a single process lifecycle.
package client
