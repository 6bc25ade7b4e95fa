package posts

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

func clonePost(src *BlogPost) *BlogPost {
	if src == nil {
		return nil
	}
	copied := *src
	copied.ExcerptEN = cloneStringPtr(src.ExcerptEN)
	copied.ExcerptDA = cloneStringPtr(src.ExcerptDA)
	copied.HeroImageURL = cloneStringPtr(src.HeroImageURL)
	if src.PublishedAt != nil {
		publishedAt := *src.PublishedAt
		copied.PublishedAt = &publishedAt
	}
	return &copied
}

func clonePosts(src []*BlogPost) []*BlogPost {
	if src == nil {
		return nil
	}
	out := make([]*BlogPost, len(src))
	for i, record := range src {
		out[i] = clonePost(record)
	}
	return out
}

func cloneStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
