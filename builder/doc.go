// Package builder constructs the pursuit Graph: a jittered-ring layout of
// node centres, k-nearest-neighbour wiring with mirrored random weights,
// connectivity repair, and leaf-count repair, per spec.md §4.2.
//
// BuildGraph is the single orchestrator, in the same spirit as lvlath's
// builder.BuildGraph(gopts, bopts, cons...): resolve a builderConfig from
// functional Options, then run the fixed construction pipeline
// (layout → wire → connect → leaf-repair) deterministically for a given
// seed. Unlike lvlath's builder — a general topology-factory library with a
// couple dozen independent Constructor shapes (cycle, star, wheel, grid,
// letters, sequences, ...) — this package builds exactly one topology, so
// there is a single pipeline rather than a composable Constructor chain.
package builder
