package service

// DefaultCargoBinary is the cargo executable looked up in PATH.
const DefaultCargoBinary = "cargo"
