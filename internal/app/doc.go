// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle (opening
// the input file, feeding each line through the processor, and emitting the
// changed lines), decoupled from any specific entrypoint like a CLI.
package app
