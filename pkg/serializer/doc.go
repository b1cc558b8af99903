// Package serializer provides utilities for serializing data to various formats.
//
// The package supports three output formats:
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable configuration format
//   - Table: Human-readable tabular output with flattened keys
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer writer.Close()
//	if err := writer.Serialize(ctx, result); err != nil {
//		log.Fatal(err)
//	}
//
// Destinations are picked from a path with NewOutput: an empty path writes
// to stdout, cm://namespace/name writes to a Kubernetes ConfigMap, anything
// else is a local file.
//
// Inputs are read back with FromFile, which detects JSON or YAML from the
// file extension:
//
//	reqs, err := serializer.FromFile[[]bmi.Request]("requests.yaml")
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
package serializer
