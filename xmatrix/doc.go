// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package xmatrix implements dense matrix and vector algebra over the
tropical semiring whose scalars are XDDs: ⊕ is pointwise xdd.Max and ⊗ is
saturated xdd.Add. A Matrix composes the per-step primitive transforms
produced by a step compiler; a Vector models the symbolic resource-state
vector that a compiled matrix is applied to.

Matrices and vectors are transient values: their entries are shared XDD
handles owned by the xdd.Manager that produced them, and discarding a
Matrix or Vector does not discard its entries.
*/
package xmatrix
