// Package schedule abstracts delayed callbacks so page behaviour that waits
// (toast expiry, deferred scrolling, mocked processing delays) can be driven
// deterministically in tests with [Fake].
package schedule
