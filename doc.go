// Package dstruct defines the shared types used across the dstruct containers: error codes and
// sentinel errors, key/value pairs, the UUID key type and the default logging setup.
//
// The containers themselves live in subpackages: array (dynamic array), linkedlist (arena-backed
// doubly linked list and stack) and hashmap (separate-chaining hash map built from the two).
// None of the containers are safe for concurrent mutation; wrap them in external synchronization,
// e.g. hashmap.SyncMap, when sharing across goroutines.
package dstruct
