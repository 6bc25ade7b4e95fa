package quotations

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

func cloneQuotation(src *QuotationRequest) *QuotationRequest {
	if src == nil {
		return nil
	}
	copied := *src
	copied.ProductID = cloneUUIDPtr(src.ProductID)
	return &copied
}

func cloneQuotations(src []*QuotationRequest) []*QuotationRequest {
	if src == nil {
		return nil
	}
	out := make([]*QuotationRequest, len(src))
	for i, record := range src {
		out[i] = cloneQuotation(record)
	}
	return out
}
