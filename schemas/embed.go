// Package schemas carries the JSON Schema documents that define the tool's
// external JSON surfaces: the run-config file and the enrich API request.
package schemas

import (
	_ "embed"
)

//go:embed run_config.schema.json
var runConfig []byte

//go:embed enrich_request.schema.json
var enrichRequest []byte

// RunConfig returns the JSON Schema for the run-config file.
func RunConfig() []byte { return runConfig }

// EnrichRequest returns the JSON Schema for the POST /enrich request body.
func EnrichRequest() []byte { return enrichRequest }
