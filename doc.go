// Package mstclust is an in-memory toolkit for unsupervised clustering
// built on top of a minimum spanning forest — divisive edge cutting
// first, fuzzy refinement second.
//
// 🚀 What is mstclust?
//
//	A deterministic clustering library that brings together:
//		• Forest primitives: disjoint trees over point indices, split & merge under one contract
//		• Spatial index: KD-tree radius (ball) queries over the dataset
//		• Numeric kernels: fuzzy hyper-volume and covariance-aware log distances (gonum)
//		• Zahn model: divisive MST cutting with three inconsistency criteria
//		• Gath–Geva model: fuzzy membership refinement to convergence
//		• Batch runner: fork/join worker batches over one shared, un-copied dataset
//
// ✨ Why choose mstclust?
//
//   - Deterministic – identical results for 1 worker and N workers
//   - Composable – both models implement one Model contract and chain in a pipeline
//   - Predictable failures – sentinel errors, whole-batch failure propagation
//
// Under the hood, everything is organized under six subpackages:
//
//	forest/    — spanning forest: roots, per-tree edges, add/remove edge, find root
//	spatial/   — KD-tree with inclusive radius queries
//	fuzzymath/ — HyperVolume and ClusterLogDistances kernels
//	cluster/   — Dataset, Partition, Model contract, ClusterInfo, batch runner
//	zahn/      — divisive clustering engine (criteria 1–3)
//	gathgeva/  — fuzzy refinement engine (log-domain membership update)
//
// Typical pipeline:
//
//	hard, _ := zahnModel.Apply(data, f, workers, nil)
//	fuzzy, _ := gathGevaModel.Apply(data, f, workers, hard)
//
// Dive into DESIGN.md for the decisions behind the contracts.
//
//	go get github.com/katalvlaran/mstclust
package mstclust
