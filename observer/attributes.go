package observer

import "go.opentelemetry.io/otel/attribute"

// Attribute keys for chunking observability spans and metrics.
var (
	AttrStrategy   = attribute.Key("chunking.strategy")
	AttrDocCount   = attribute.Key("chunking.document_count")
	AttrChunkCount = attribute.Key("chunking.chunk_count")
)
