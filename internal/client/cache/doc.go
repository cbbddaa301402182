// Package cache keeps the full post collection for a bounded time and
// persists it to a key/value slot so it survives restarts.
//
// A single Cache is constructed at startup and injected into the services.
// Only Set and Clear mutate it; reads return deep copies. Two processes
// sharing one slot are not coordinated: the last writer wins.
package cache
