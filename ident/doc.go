// Package ident maintains the bijection between stable unique ids and
// compact storage positions.
//
// A Table hands out ids that never change meaning: an id is bound to one
// position at a time, is rebound when swap-with-last compaction moves its
// entity, and resolves to InvalidPosition once the entity is removed. The
// allocator never hands out an id twice. An undo of the removal may bind the
// same id again, since it restores the same entity.
//
// Lookups are O(1) in both directions: ids are dense indexes into the
// id -> position slice and positions are dense indexes into the
// position -> id slice.
package ident
