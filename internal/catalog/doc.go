// Package catalog defines the storefront catalog: beats, artists and genres.
//
// A [Catalog] is built once at startup, either from the compiled-in [Default]
// data or from a TOML file via [LoadFile], and is never mutated afterwards.
package catalog
