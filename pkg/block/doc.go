// Package block defines the closed set of page sections a preset is built
// from. Every block carries a kind-specific property struct; the generic
// Value tree (Str, Seq, Obj) is the shape those structs take while
// placeholders are being resolved, so substitution can walk any block without
// reflection. Unknown kinds survive decoding as Unknown values so share links
// written by newer builds still round-trip; renderers skip them.
package block
