package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// SettingUUID derives the identifier for a site setting keyed by name.
func SettingUUID(key string) uuid.UUID {
	return UUID("verdanta-cms:setting:" + strings.ToLower(strings.TrimSpace(key)))
}

// TranslationUUID derives the identifier for a UI translation key.
func TranslationUUID(key string) uuid.UUID {
	return UUID("verdanta-cms:translation:" + strings.TrimSpace(key))
}
