// Package textutil provides small text helpers shared by the CLI: filename
// sanitization for generated output names and term-frequency fingerprints for
// document similarity comparison.
package textutil
