// Package notify implements the page's toast notifications: at most one toast is
// visible, a new toast replaces the old one, and toasts expire after five seconds.
package notify
