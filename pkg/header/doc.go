// Package header provides the common envelope stamped on every serialized
// bmicalc resource.
//
// A header identifies what a document is and when it was produced:
//
//	kind: BMIResult
//	apiVersion: bmicalc.dev/v1
//	metadata:
//	  timestamp: "2025-01-15T10:30:00Z"
//	  version: v1.0.0
//	  source: api
//
// Init stamps kind, apiVersion, timestamp and version; extra metadata such
// as source is added with WithMetadata options.
//
// Writers that cannot inspect concrete result types (for example the
// ConfigMap serializer) read Kind and Metadata through GetKind and
// GetMetadata.
package header
