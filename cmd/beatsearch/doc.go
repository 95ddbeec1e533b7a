// Command beatsearch searches the storefront catalog from a terminal.
//
// Usage:
//
//	beatsearch [--catalog FILE] <command>
//
// Commands:
//
//	search    Print grouped results for a query
//	activate  Print the action for selecting a catalog entry
//	catalog   List every catalog entry
//	tui       Interactive search box with live results
//
// Without --catalog (or the CATALOG_FILE environment variable) the
// compiled-in catalog is used. Colours are dropped when stdout is not a
// terminal.
package main
