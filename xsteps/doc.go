// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package xsteps compiles an ordered sequence of pipeline execution steps
into a single xmatrix.Matrix. A step is one unit of pipeline behavior: use
a resource for a duration, release a resource, branch on an event
variable, or mark a split boundary between independently timed segments.

The compiler itself only knows about Split: every other step kind is
opaque to it and is turned into a primitive matrix by a caller-supplied
MatrixProvider, then folded into the running product in sequence order.
*/
package xsteps
