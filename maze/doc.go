// Package maze models text mazes and solves them with the search engines.
//
// Tiles:
//
//	S        start (floor)
//	T        target (floor)
//	x        wall
//	.        floor
//	^ v < >  floor marking an expected route from S to T
//
// Example:
//
//	S..
//	vx.
//	>T.
//
// Moves goes one step north, south, west or east (or also diagonally) onto
// any non-wall tile. Every step costs 1. Solve runs one of the engines in
// package astar, bfs or dijkstra over the maze.
package maze
