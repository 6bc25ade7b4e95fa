package settings

import "fmt"

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

func cloneSetting(src *SiteSetting) *SiteSetting {
	if src == nil {
		return nil
	}
	copied := *src
	copied.ValueJSON = cloneMap(src.ValueJSON)
	return &copied
}

func cloneSettings(src []*SiteSetting) []*SiteSetting {
	if src == nil {
		return nil
	}
	out := make([]*SiteSetting, len(src))
	for i, record := range src {
		out[i] = cloneSetting(record)
	}
	return out
}

func cloneMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
