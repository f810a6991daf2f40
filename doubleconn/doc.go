// Package doubleconn answers 2-edge-connectivity queries on a dynamic
// multigraph.
//
// A spanning forest of the graph is kept in a toptree.Tree. Every edge
// outside the forest covers the tree path between its endpoints: the cover
// counter of each tree edge on that path is increased by one through a
// lazy update on the exposed path cluster. Two vertices are 2-edge-connected
// exactly when they are connected and every tree edge between them is
// covered at least once, that is when no single edge deletion separates
// them.
//
// Deleting a tree edge uncovers every non-tree edge, cuts the edge,
// promotes a non-tree edge reconnecting the two halves when one exists and
// covers the remaining non-tree edges again.
//
// Every public call runs inside an OpenTelemetry span; the tracer provider
// is injected with WithTracerProvider and defaults to the global one.
package doubleconn
