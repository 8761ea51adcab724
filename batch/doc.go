// Package batch provides the write accumulator handed from pixedit edits to
// layers and history.
//
// A Batch is anchored at an absolute point, collects paint and erase writes
// (last write per pixel wins), and is finalized exactly once. Finalizing
// rasterizes the writes into an RGBA matrix over the batch bounds; the GPU
// texture for that matrix is created through a gpucontext.TextureCreator
// and refreshed through gpucontext.TextureUpdater, either immediately or on
// the next Flush.
//
// Batch is NOT safe for concurrent use.
package batch
