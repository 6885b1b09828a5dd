// Package matching computes a maximum-weight matching on a complete graph
// using the Galil–Micali–Gabow variant of Edmonds' blossom algorithm with
// explicit dual variables ("An O(EV log V) Algorithm for Finding a Maximal
// Weighted Matching in General Graphs", Galil, Micali & Gabow, 1986).
//
// The graph is considered complete: edges with weight zero are treated as
// absent and the algorithm never includes one in the returned matching.
// Among maximum-weight matchings no further tie-breaking guarantee is
// made — callers express every tie-break as part of the edge weights
// themselves (see package dutch and package burstein).
//
// # Usage
//
//	g := matching.NewGraph[wideint.Dynamic]()
//	g.AddVertex()
//	g.AddVertex()
//	g.SetEdgeWeight(0, 1, wideint.FromUint64(10))
//	g.ComputeMatching()
//	result := g.GetMatching() // result[0] == 1, result[1] == 0
//
// # Generic weight type
//
// Graph is generic over any type satisfying Weight[T], so the Dutch
// orchestrator instantiates it with wideint.Dynamic (arbitrary width) and
// Burstein with wideint.Fixed64 (one machine word) — per spec §9's design
// note, the solver itself only ever adds, subtracts, shifts and compares;
// it never multiplies or divides, so Weight does not need those.
//
// # Complexity and lifecycle
//
// ComputeMatching runs in O(n³). Each call restarts the augmenting-path
// search from the empty matching with every dual variable reset to the
// maximum observed edge weight; the blossom/dual-variable forest built
// during one ComputeMatching call does not persist into the next, so
// repeated SetEdgeWeight/ComputeMatching cycles on the same Graph — the
// pattern both orchestrators use to perturb weights and re-solve — redo
// the full search each time. Two calls against identical weights always
// return identical matchings. See DESIGN.md for why this trades away the
// original's incremental cross-call blossom reuse for a much simpler,
// still O(n³)-per-call implementation.
package matching
