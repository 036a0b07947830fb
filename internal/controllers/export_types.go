package controllers

import (
	"encoding/json"
	"time"
)

type ExportResponse struct {
	Version      string                     `json:"version"`      // The backend version that created the export
	Data         map[string]json.RawMessage `json:"data"`         // The exported data, keyed by model name
	CreationTime time.Time                  `json:"creationTime"` // Time the export was created at
	Clacks       string                     `json:"clacks"`       // Always set to "GNU Terry Pratchett"
}
