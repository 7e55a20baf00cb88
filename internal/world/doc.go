// Package world models a fixed-size grid of named cells.
//
// A World is allocated in full when it is constructed: every (x, y) slot in
// [0, width) x [0, height) holds exactly one Cell whose coordinates equal its
// slot. Dimensions never change afterwards; only cell names are mutable.
//
// Every accessor validates coordinates before touching the grid and reports
// failures as *errors.Error values from internal/platform/errors, so callers
// can branch on the code without parsing messages.
//
// A World is not safe for concurrent mutation. Callers sharing one across
// goroutines must serialize SetCellName against reads themselves.
package world
