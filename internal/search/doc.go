// Package search is the storefront's search core.
//
// [Engine.Search] turns the text typed into the search box into a [Result]:
// hide, ignore (query too short), grouped matches, or no results. [Activate]
// turns a selected entry into the [Action] the page should perform. Both are
// pure; hosts apply their output to whatever view they drive.
package search
