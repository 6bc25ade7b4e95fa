package validation

import (
	"errors"
	"testing"
)

func TestMetadataValidatorAcceptsUnregisteredSections(t *testing.T) {
	v, err := NewMetadataValidator(nil)
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	if err := v.ValidateMetadata("hero", map[string]any{"anything": true}); err != nil {
		t.Fatalf("expected unregistered section to accept, got %v", err)
	}
}

func TestMetadataValidatorEnforcesSectionSchema(t *testing.T) {
	v, err := NewMetadataValidator(map[string]map[string]any{
		"hero": {
			"type": "object",
			"properties": map[string]any{
				"gradient": map[string]any{"type": "string"},
				"priority": map[string]any{"type": "integer"},
			},
			"additionalProperties": false,
		},
	})
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	if err := v.ValidateMetadata("hero", map[string]any{"gradient": "from-emerald-500", "priority": 2}); err != nil {
		t.Fatalf("expected valid bag to pass, got %v", err)
	}

	err = v.ValidateMetadata("hero", map[string]any{"gradient": 5})
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}
	if issues := Issues(err); len(issues) == 0 {
		t.Fatalf("expected validation issues")
	}

	// Other sections stay schema-on-read.
	if err := v.ValidateMetadata("footer", map[string]any{"gradient": 5}); err != nil {
		t.Fatalf("expected other section to accept, got %v", err)
	}
}

func TestMetadataValidatorSectionLookupIsCaseInsensitive(t *testing.T) {
	v, err := NewMetadataValidator(map[string]map[string]any{
		"Hero": {"type": "object", "additionalProperties": false},
	})
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	if err := v.ValidateMetadata("hero", map[string]any{"extra": 1}); !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}
}

func TestRegisterRejectsBadSchema(t *testing.T) {
	v, err := NewMetadataValidator(nil)
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	if err := v.Register("hero", map[string]any{"type": "no-such-type"}); !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid, got %v", err)
	}
	if err := v.Register("", map[string]any{"type": "object"}); !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid for empty section, got %v", err)
	}
}

func TestValidatePayload(t *testing.T) {
	schema := map[string]any{
		"type":     "object",
		"required": []any{"headline"},
		"properties": map[string]any{
			"headline": map[string]any{"type": "string"},
		},
	}

	if err := ValidatePayload(schema, map[string]any{"headline": "hi"}); err != nil {
		t.Fatalf("expected payload to validate, got %v", err)
	}
	if err := ValidatePayload(schema, map[string]any{}); !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}
	if err := ValidatePayload(nil, map[string]any{"whatever": 1}); err != nil {
		t.Fatalf("expected nil schema to accept, got %v", err)
	}
}
