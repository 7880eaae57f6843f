// Package balance implements the one-time landscape assignment that runs
// after the Graph is built and before the first Tick: spawn selection, a
// BFS seed path from pursuer to runner, and a policy-conditioned heuristic /
// path-cost landscape shaped so the chosen policy cannot win trivially at
// spawn (spec.md §4.3).
//
// Plan is the package's single entrypoint, in the same spirit as builder's
// single BuildGraph entrypoint: resolve spawns, walk the seed path, write
// the landscape, verify the §4.3 post-condition, and freeze the Graph.
package balance
