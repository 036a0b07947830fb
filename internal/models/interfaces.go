package models

import "encoding/json"

// Model is an interface that all entity models implement
type Model interface {
	Export() (json.RawMessage, error) // All instances of this model for export.
}

// The Registry is a slice of all models the instance stores
//
// Operations that work on every model, like the export, iterate over it.
// Adding a new model only requires registering it here.
var Registry = []Model{
	Agency{},
	Allocation{},
	Disbursement{},
	Fund{},
	Program{},
}
