// Package graphpoet turns a corpus into a word-adjacency graph and uses it
// to embellish sentences with bridge words.
//
// What is graphpoet?
//
//	A small, thread-safe toolkit made of:
//		• wordgraph – generic directed graph with accumulating int64 weights
//		• poet      – corpus ingestion + bridge-word poem generation
//		• cmd/graphpoet – CLI: poem, graph (YAML dump), version
//
// How a bridge word is chosen:
//
//	    explore ──2──▶ strange ──1──▶ new
//	    explore ──1──▶ unknown ──1──▶ new
//
//	For the input "explore new" both paths connect the pair; strange wins
//	because 2·1 > 1·1. Equal products fall back to the alphabetically
//	smaller word. Inserted words are always lower-case.
//
// Under the hood:
//
//	wordgraph/        — Graph[V], SetEdge/IncrementEdge, Targets/Sources
//	poet/             — New, NewFromFile, Poem, Bridge
//	internal/config/  — viper-backed settings
//	internal/export/  — YAML snapshot of a word graph
//	cmd/graphpoet/    — cobra CLI
//	examples/trek/    — runnable walkthrough
//
//	go get github.com/katalvlaran/graphpoet
package graphpoet
