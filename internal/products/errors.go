package products

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

func cloneProduct(src *Product) *Product {
	if src == nil {
		return nil
	}
	copied := *src
	copied.DescriptionEN = cloneStringPtr(src.DescriptionEN)
	copied.DescriptionDA = cloneStringPtr(src.DescriptionDA)
	copied.ImageURL = cloneStringPtr(src.ImageURL)
	return &copied
}

func cloneProducts(src []*Product) []*Product {
	if src == nil {
		return nil
	}
	out := make([]*Product, len(src))
	for i, record := range src {
		out[i] = cloneProduct(record)
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
