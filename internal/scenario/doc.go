// Package scenario loads YAML-described sparse matrix scenarios and runs
// them against the matrix package: build, dump, traverse and evaluate a
// predicate, optionally checking the outcome against declared expectations.
//
// It also carries the built-in self-test suite used by cmd/sparsedemo.
package scenario
