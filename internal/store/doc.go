// Package store persists the meeting collection.
//
// The store keeps the whole collection as a single namespaced record in a
// sqlite database: one row per namespace whose value is the JSON-encoded,
// insertion-ordered list of meetings. The record is loaded once at open and
// rewritten on every mutation, so a mutation is atomic at record level and
// concurrent writers from other processes degrade to last-write-wins.
package store
