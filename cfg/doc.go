// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package cfg provides a minimal, concrete control-flow graph usable with
package localtime: Edge carries a step sequence and accumulates its time
bag; Block groups in-edges and marks whether it is a basic block; a
Collection is an ordered sequence of blocks.

This is a reference implementation of localtime's Graph/Block/Edge
interfaces for tests and the command-line driver, not a full CFG builder —
a real front-end is expected to supply its own types satisfying the same
interfaces.
*/
package cfg
