package validation

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// MetadataValidator checks block metadata bags against per-section JSON
// schemas. Sections without a registered schema accept any bag, keeping the
// metadata column schema-on-read by default.
type MetadataValidator struct {
	mu      sync.RWMutex
	schemas map[string]*jsonschema.Schema
}

// NewMetadataValidator compiles the supplied section schemas once up front.
func NewMetadataValidator(schemas map[string]map[string]any) (*MetadataValidator, error) {
	v := &MetadataValidator{schemas: make(map[string]*jsonschema.Schema)}
	for section, schema := range schemas {
		if err := v.Register(section, schema); err != nil {
			return nil, fmt.Errorf("section %q: %w", section, err)
		}
	}
	return v, nil
}

// Register compiles and installs a schema for one section, replacing any
// previous registration.
func (v *MetadataValidator) Register(section string, schema map[string]any) error {
	section = normalizeSection(section)
	if section == "" {
		return fmt.Errorf("%w: section is required", ErrSchemaInvalid)
	}
	if len(schema) == 0 {
		v.mu.Lock()
		delete(v.schemas, section)
		v.mu.Unlock()
		return nil
	}
	compiled, err := compileSchema(schema)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	v.mu.Lock()
	v.schemas[section] = compiled
	v.mu.Unlock()
	return nil
}

// ValidateMetadata reports schema violations for the section's metadata bag.
func (v *MetadataValidator) ValidateMetadata(section string, metadata map[string]any) error {
	if v == nil {
		return nil
	}
	v.mu.RLock()
	compiled, ok := v.schemas[normalizeSection(section)]
	v.mu.RUnlock()
	if !ok {
		return nil
	}
	if metadata == nil {
		metadata = map[string]any{}
	}
	if err := compiled.Validate(normalizeForSchema(metadata)); err != nil {
		return &PayloadValidationError{
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

func normalizeSection(section string) string {
	return strings.ToLower(strings.TrimSpace(section))
}

// normalizeForSchema round-trips values that may not be plain JSON types, such
// as json.Number from decoded admin payloads.
func normalizeForSchema(metadata map[string]any) any {
	encoded, err := json.Marshal(metadata)
	if err != nil {
		return metadata
	}
	var out any
	if err := json.Unmarshal(encoded, &out); err != nil {
		return metadata
	}
	return out
}
