// Package game owns the active world.
//
// A Game holds zero or one *world.World. The entry point builds one with New
// and passes it where it is needed; Instance exposes a single shared Game for
// callers that cannot be handed one.
package game
