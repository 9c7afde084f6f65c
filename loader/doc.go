// Package loader parses the plain-text edge-list dataset format into the
// (u_ext, v_ext) pairs graph.Build interns into a frozen Graph.
//
// Format (section 6): UTF-8 text, one edge per line; each line holds two
// non-negative integers separated by one or more whitespace characters;
// extra whitespace is ignored; blank lines and lines starting with '#' are
// skipped. Self-loops and duplicate edges are not this package's concern —
// graph.Build drops those during interning (invariant D3).
//
// Grounded on original_source/GraphLoader.py's networkx.read_edgelist call,
// generalised from networkx's whitespace-tokenised parser to this module's
// explicit malformed-line error contract.
package loader
