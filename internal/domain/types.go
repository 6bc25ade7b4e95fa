package domain

import "strings"

// Status represents lifecycle states for CMS entities
type Status string

const (
	// StatusDraft indicates content still under preparation
	StatusDraft Status = "draft"
	// StatusPublished identifies content available to consumers
	StatusPublished Status = "published"
)

// ParseStatus coerces arbitrary status strings into a known representation,
// defaulting to draft.
func ParseStatus(input string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(input))) {
	case StatusPublished:
		return StatusPublished
	default:
		return StatusDraft
	}
}

// IsPublished reports whether the status marks publicly visible content.
func (s Status) IsPublished() bool {
	return s == StatusPublished
}

// ChangeType tags the kind of mutation captured by a version snapshot.
type ChangeType string

const (
	ChangeTypeCreate    ChangeType = "create"
	ChangeTypeUpdate    ChangeType = "update"
	ChangeTypePublish   ChangeType = "publish"
	ChangeTypeUnpublish ChangeType = "unpublish"
	ChangeTypeRollback  ChangeType = "rollback"
)

// KnownChangeTypes lists every change type in display order.
func KnownChangeTypes() []ChangeType {
	return []ChangeType{
		ChangeTypeCreate,
		ChangeTypeUpdate,
		ChangeTypePublish,
		ChangeTypeUnpublish,
		ChangeTypeRollback,
	}
}
