// Package format names the document formats a bracket tree can be read
// from and written to.
package format
