// Package handlers provides HTTP request handlers for the beatsite API.
//
// It includes handlers for:
//   - Search (JSON and HTML fragment), result activation and search submits
//   - Trending queries and the catalog listing
//   - The mocked contact form and buy/preview buttons
//   - Health checks and version information
//   - The landing page itself
//
// Handlers are stateless per visitor. Responses that would show a toast carry a
// notification descriptor; responses that defer work carry the delay in
// milliseconds for the page to honour.
package handlers
