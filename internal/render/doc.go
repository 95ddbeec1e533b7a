// Package render turns search results into the page's results-container markup
// and into styled terminal text.
package render
