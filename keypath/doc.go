/*
Package keypath addresses values inside nested mappings with canonical
dot-separated paths, e.g. `optimizer.sgd.learning_rate`.

A canonical path is a non-empty sequence of non-empty segments joined by
dots. Raw path fragments may additionally carry relative "go up one level"
tokens: each leading `..` pair on a segment discards the most recently
accumulated segment before the rest of the fragment applies. Normalize
resolves fragments into a canonical path, Get walks a canonical path through
a nested mapping, and FlattenKeys enumerates every path Get would accept.

This package centralizes all path formatting, parsing, and resolution logic
so the identifier schema is enforced in exactly one place.
*/
package keypath
