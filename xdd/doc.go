// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package xdd defines a concrete type for eXecution-time Decision Diagrams
(XDD), a multi-terminal, hash-consed binary decision diagram whose leaves are
signed integers from a saturated tropical semiring instead of the booleans
{0,1} of an ordinary BDD.

Basics

An XDD is a DAG of Nodes ordered by an event Var, the boolean the node
branches on. Innner nodes carry a low branch (taken when the variable is
false) and a high branch (taken when it is true); leaves carry a single Leaf
value. The three distinguished leaf values BOT, TOP and 0 propagate through
every operator with saturation semantics: BOT marks an infeasible path, TOP an
undefined upper bound.

Every Node is built exclusively through a Manager, which hash-conses nodes so
that structurally equal requests always return the same pointer and prunes
inner nodes whose two branches agree. A Manager owns an arena of plain
pointer-based nodes: one Manager is created per analysis run, nodes live for
its entire lifetime, and there is no resizing or collection to reason about.

Concurrency

A Manager's unique table is safe for concurrent use: multiple goroutines may
call MkLeaf and MkNode at the same time and are guaranteed to observe the same
canonical Node for any two structurally equal requests. The table is sharded
by a hash of the request so that unrelated nodes rarely contend on the same
lock.
*/
package xdd
