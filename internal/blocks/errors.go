package blocks

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

func cloneBlock(src *ContentBlock) *ContentBlock {
	if src == nil {
		return nil
	}
	copied := *src
	copied.DescriptionEN = cloneStringPtr(src.DescriptionEN)
	copied.DescriptionDA = cloneStringPtr(src.DescriptionDA)
	copied.Value = cloneStringPtr(src.Value)
	copied.Icon = cloneStringPtr(src.Icon)
	copied.Color = cloneStringPtr(src.Color)
	copied.ImageURL = cloneStringPtr(src.ImageURL)
	copied.Metadata = cloneMap(src.Metadata)
	copied.PublishedAt = cloneTimePtr(src.PublishedAt)
	copied.Versions = nil
	return &copied
}

func cloneBlocks(src []*ContentBlock) []*ContentBlock {
	if src == nil {
		return nil
	}
	out := make([]*ContentBlock, len(src))
	for i, record := range src {
		out[i] = cloneBlock(record)
	}
	return out
}

func cloneVersion(src *ContentBlockVersion) *ContentBlockVersion {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Snapshot = cloneSnapshot(src.Snapshot)
	return &copied
}

func cloneVersions(src []*ContentBlockVersion) []*ContentBlockVersion {
	if src == nil {
		return nil
	}
	out := make([]*ContentBlockVersion, len(src))
	for i, version := range src {
		out[i] = cloneVersion(version)
	}
	return out
}

func cloneSnapshot(src BlockSnapshot) BlockSnapshot {
	copied := src
	copied.PublishedAt = cloneTimePtr(src.PublishedAt)
	copied.DescriptionEN = cloneStringPtr(src.DescriptionEN)
	copied.DescriptionDA = cloneStringPtr(src.DescriptionDA)
	copied.Value = cloneStringPtr(src.Value)
	copied.Icon = cloneStringPtr(src.Icon)
	copied.Color = cloneStringPtr(src.Color)
	copied.ImageURL = cloneStringPtr(src.ImageURL)
	copied.Metadata = cloneMap(src.Metadata)
	return copied
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

func cloneStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

func cloneTimePtr(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
