package translations

import (
	"fmt"
	"time"
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

func cloneTranslation(src *Translation) *Translation {
	if src == nil {
		return nil
	}
	copied := *src
	copied.PublishedAt = cloneTimePtr(src.PublishedAt)
	return &copied
}

func cloneTranslations(src []*Translation) []*Translation {
	if src == nil {
		return nil
	}
	out := make([]*Translation, len(src))
	for i, record := range src {
		out[i] = cloneTranslation(record)
	}
	return out
}

func cloneTranslationVersion(src *TranslationVersion) *TranslationVersion {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Snapshot.PublishedAt = cloneTimePtr(src.Snapshot.PublishedAt)
	return &copied
}

func cloneTranslationVersions(src []*TranslationVersion) []*TranslationVersion {
	if src == nil {
		return nil
	}
	out := make([]*TranslationVersion, len(src))
	for i, version := range src {
		out[i] = cloneTranslationVersion(version)
	}
	return out
}

func cloneTimePtr(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
