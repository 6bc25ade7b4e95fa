// Package blocks re-exports the content-block API so host applications can
// depend on a stable import path without reaching into internal packages.
package blocks

import internalblocks "github.com/verdanta/cms/internal/blocks"

// ContentBlock is a bilingual block of site content keyed by section and
// block key.
type ContentBlock = internalblocks.ContentBlock

// LocalizedBlock is a single-language projection of a content block.
type LocalizedBlock = internalblocks.LocalizedBlock

// ContentBlockVersion is an immutable snapshot taken on each mutation.
type ContentBlockVersion = internalblocks.ContentBlockVersion

// BlockSnapshot carries the editable fields captured by a version.
type BlockSnapshot = internalblocks.BlockSnapshot

// Service exposes content-block management use-cases.
type Service = internalblocks.Service

type (
	CreateBlockRequest         = internalblocks.CreateBlockRequest
	UpdateBlockRequest         = internalblocks.UpdateBlockRequest
	DuplicateBlockRequest      = internalblocks.DuplicateBlockRequest
	SetBlockStatusRequest      = internalblocks.SetBlockStatusRequest
	DeleteBlockRequest         = internalblocks.DeleteBlockRequest
	RestoreBlockVersionRequest = internalblocks.RestoreBlockVersionRequest
)

var (
	ErrSectionRequired      = internalblocks.ErrSectionRequired
	ErrBlockKeyRequired     = internalblocks.ErrBlockKeyRequired
	ErrBlockKeyInvalid      = internalblocks.ErrBlockKeyInvalid
	ErrBlockExists          = internalblocks.ErrBlockExists
	ErrBlockIDRequired      = internalblocks.ErrBlockIDRequired
	ErrStatusInvalid        = internalblocks.ErrStatusInvalid
	ErrMetadataInvalid      = internalblocks.ErrMetadataInvalid
	ErrVersioningDisabled   = internalblocks.ErrVersioningDisabled
	ErrBlockVersionRequired = internalblocks.ErrBlockVersionRequired
	ErrBlockVersionConflict = internalblocks.ErrBlockVersionConflict
	ErrSearchQueryRequired  = internalblocks.ErrSearchQueryRequired
)
