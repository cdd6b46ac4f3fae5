// Package runner registers puzzle solvers by day and runs both parts of a
// day against one input.
//
// Run prints
//
//	Part 1:
//	<answer or error>
//	Part 2:
//	<answer or error>
//
// A part that fails, by error or panic, is reported in place of its answer
// and never stops the other part. In watch mode each part's answer and
// duration is also logged through slog.
package runner
