// Package quarry is a document-chunking engine for retrieval pipelines.
//
// It turns raw documents into bounded, overlap-consistent chunks with
// traceable metadata (section breadcrumbs, speaker sets, parent/child
// linkage) under several structurally different input shapes: plain prose,
// markdown-like structured text, and turn-based dialogue transcripts.
//
// # Quick Start
//
// Create a selector and let it pick the strategy per document:
//
//	selector, err := quarry.NewSelector(
//		quarry.WithChunkSize(512),
//		quarry.WithChunkOverlap(64),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	doc := quarry.NewDocument(text, map[string]any{"source": "manual.md"})
//	chunks := selector.SplitDocuments([]quarry.Document{doc}, quarry.StrategyAuto)
//
// # Strategies
//
// Seven strategies are available, explicitly or via automatic feature
// detection:
//
//   - [StrategyFixed] — fixed-size overlapping character windows
//   - [StrategySentence] — sentence packing with trailing-character overlap
//   - [StrategyRecursive] — paragraph, then sentence, then word splitting
//   - [StrategyStructure] — markdown heading sections with breadcrumbs
//   - [StrategyDialogue] — speaker-turn windows with turn overlap
//   - [StrategySmallBig] — dual-granularity small/big chunks
//   - [StrategyParentChild] — explicit two-level parent/child pairs
//
// Every chunking operation is synchronous, pure, and CPU-bound. A
// constructed selector or chunker is read-only and safe for concurrent use;
// splitting many documents in parallel needs no synchronization here.
//
// Embedding, vector storage, and retrieval are out of scope: this package
// consumes documents and produces chunk lists, nothing else. The observer
// subpackage adds optional OpenTelemetry instrumentation around splitting.
package quarry
