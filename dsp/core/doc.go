// Package core holds the scalar helpers and processor options shared by the
// table, window and phase packages.
package core
