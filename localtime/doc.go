// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package localtime implements the per-edge execution-time pipeline: for
each in-edge of each basic block, it walks the edge's step sequence,
splits it into segments at Split markers, compiles each segment into an
XDD matrix, applies the matrix to a resource-state vector, and records the
time coordinate of each segment on the edge.

A Processor drives this per-edge algorithm; Run fans work out across a
worker pool sharing one xdd.Manager, or runs sequentially when given zero
workers.
*/
package localtime
