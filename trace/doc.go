// Package trace replays YAML operation traces against a toptree.Tree.
//
// A trace names the number of vertices and a list of operations:
//
//	vertices: 4
//	ops:
//	  - {op: link, u: 0, v: 1, payload: 3}
//	  - {op: expose, u: 0, v: 1, want: 3}
//	  - {op: connected, u: 0, v: 2, want: false}
//	  - {op: cut, u: 0, v: 1, want: 3}
//	  - {op: cut, u: 0, v: 1, err: no_such_edge}
//
// Edge payloads are int64 weights. expose expects the weight of the u-v
// path, cut the payload of the removed edge and connected a boolean. An
// op with err expects the operation to fail with the named sentinel.
package trace
