package store

import (
	"encoding/json"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// storeSchema is deliberately structural: it pins the document shape and
// integer IDs but not field-level business rules, so older data that the
// model can still coerce (e.g. an unknown task status) is not rejected.
const storeSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "users": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "email"],
        "properties": {
          "id": {"type": "integer"},
          "name": {"type": "string"},
          "email": {"type": "string"},
          "projects": {"type": "array", "items": {"type": "integer"}}
        }
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "owner_id"],
        "properties": {
          "id": {"type": "integer"},
          "title": {"type": "string"},
          "description": {"type": "string"},
          "owner_id": {"type": "integer"},
          "due_date": {"type": ["string", "null"]},
          "tasks": {"type": "array", "items": {"type": "integer"}}
        }
      }
    },
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "project_id"],
        "properties": {
          "id": {"type": "integer"},
          "title": {"type": "string"},
          "status": {"type": "string"},
          "project_id": {"type": "integer"},
          "assigned_to": {"type": "array", "items": {"type": "integer"}}
        }
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("store.schema.json", storeSchema)

// validateDocument checks raw file content against the store schema. A
// failure is treated by the caller exactly like a parse failure.
func validateDocument(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return compiledSchema.Validate(v)
}
