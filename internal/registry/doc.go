// Package registry holds the two template registries. Local keeps files and
// directories under a storage folder, keyed by entry name. Remote keeps URLs,
// one per line, in a flat text file. Both address entries by ordinal
// position at the boundary: Resolve turns a position taken from a fresh
// listing into the stable key (name or URL) that every other call uses.
package registry
