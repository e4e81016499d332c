// Package dahu computes distance transforms on the tree of shapes for
// interactive image segmentation.
//
// 🚀 What is dahu?
//
//	A grayscale image is immersed into an interval-valued grid, then a
//	wavefront propagation over a hierarchical bucket queue computes, for
//	every element, its distance to a set of seeds:
//		• Dahu distance: minimum barrier (max − min along the best path)
//		• Level-Lines distance: number of level lines crossed
//
// ✨ Why the immersion?
//
//   - Neighbouring pixels are joined through 1- and 0-faces carrying the
//     range of their adjacent pixels, so paths see every level in between.
//   - Propagation runs in O(N + L) with a bucket queue, L the number of levels.
//
// Under the hood:
//
//	gridgraph/  — Grid, Point, faces, connectivity and connected components
//	immersion/  — (2H−1)×(2W−1) interval immersion and seed mapping
//	hqueue/     — hierarchical FIFO bucket queue with a forward-only level
//	distance/   — propagation engine, Dahu and Level-Lines transforms
//	border/     — constant and median border padding, cropping
//	segment/    — marker masks → fg/bg distance maps → probability map
//	render/     — image loading, marker extraction, colormaps, saving
//	config/     — dahu.toml loading and validation
//	cmd/dahu    — command-line tool
//
// Quick ASCII example (row [1 1 9], seed on the left pixel):
//
//	m: 1 1 1 1 9       Dahu:        0 0 0 0 8
//	M: 1 1 1 9 9       Level-Lines: 0 0 0 0 8
//
// Getting started:
//
//	go install github.com/katalvlaran/dahu/cmd/dahu@latest
//	dahu run photo.png --painted photo_painted.png -o out/
package dahu
