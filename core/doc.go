// Package core defines the contracts shared by the bfs, dijkstra and astar
// search engines.
//
// What:
//
//   - State: any comparable Go type (grid cell, label, composite puzzle state).
//   - Neighbors, CostFunc, Heuristic: caller-supplied behavior injected as
//     plain functions. Neighbors yields candidates lazily through iter.Seq.
//   - Cost: the numeric constraint for accumulated costs (integers or floats).
//   - Result: the path from start to goal inclusive, its total cost and the
//     number of expanded states.
//   - Adjacency: a plain map[S][]S graph with a ready-made Neighbors function.
//   - Predecessors: the key→key map A* uses to reconstruct paths.
//
// Errors:
//
//   - ErrUnsolvable      the frontier emptied before the goal was reached.
//   - ErrExpansionLimit  WithMaxExpansions cap was hit.
//   - ErrOptionViolation an invalid Option was supplied.
//
// Every engine wraps ErrUnsolvable with its own prefix; test for it with
// errors.Is. An unsolvable search is a normal outcome and never returns a
// zero-length path together with a nil error.
//
// Options:
//
//	WithContext(ctx)        cancellation, checked once per expansion
//	WithMaxExpansions(n)    stop with ErrExpansionLimit after n expansions
//	WithLogger(l)           debug tracing through log/slog
//	WithOnExpand(fn)        hook called after each expansion
//
// With no options an engine runs to completion or exhaustion exactly like
// the textbook algorithm; nothing is cached between calls.
package core
