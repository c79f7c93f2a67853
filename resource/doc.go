// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package resource defines the pipeline resource model consulted by the
local-edge timing processor: the length and time-index layout of a
resource-state vector, its initial value, and a translation from
individual pipeline steps into primitive XDD matrices.

The processor itself only depends on the narrow Manager interface; this
package also ships PipelineModel, a concrete resource model usable
standalone or as a reference for building others.
*/
package resource
