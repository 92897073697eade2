// Package bfs provides breadth-first search over core vertices, returning
// unweighted distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: embedded vertex → distance (edges) from start
//   - Parent: embedded vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual incidences via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - MarkDistances writes each reached vertex's depth to Properties["d"],
//     the key read by core.Vertex.NeighborsWithDistance.
//
// Why
//
//   - Distance layering around an atom (ring detection, substituent shells).
//   - Connected-fragment discovery in a molecule graph.
//
// Determinism
//
//	Neighbors are enqueued in incidence insertion order, so the visit
//	sequence is reproducible. Disconnected edges are never followed.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map)
//
// Usage
//
//	res, err := bfs.BFS(atom,
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr core.Node, via core.Link) bool { return true }),
//	)
//
// Errors
//
//   - ErrStartNil         if the start vertex is nil.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ErrNotReached       from PathTo for a vertex outside the search.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
