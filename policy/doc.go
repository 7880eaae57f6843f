// Package policy implements the seven pursuer decision kernels sharing a
// single NextMove contract: BFS, DFS, UCS (graph-traversal family, backed by
// a persistent VisitedSets with backtrack bookkeeping) and GreedyMin,
// GreedyMax, AStarMin, AStarMax (no-backtrack, heuristic/cost-driven
// families with a plateau test).
//
// Kernels are stateless functions: all persistent bookkeeping lives in the
// caller-owned VisitedSets, mirroring the teacher's walker-struct pattern in
// its old bfs/dfs packages, generalized here to a single shared signature
// instead of one exported function per algorithm.
package policy
