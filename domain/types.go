package domain

import internaldomain "github.com/verdanta/cms/internal/domain"

// Status represents lifecycle states for CMS entities.
type Status = internaldomain.Status

const (
	// StatusDraft indicates content still under preparation.
	StatusDraft = internaldomain.StatusDraft
	// StatusPublished identifies content available to consumers.
	StatusPublished = internaldomain.StatusPublished
)

// ChangeType tags the kind of mutation captured by a version snapshot.
type ChangeType = internaldomain.ChangeType

const (
	ChangeTypeCreate    = internaldomain.ChangeTypeCreate
	ChangeTypeUpdate    = internaldomain.ChangeTypeUpdate
	ChangeTypePublish   = internaldomain.ChangeTypePublish
	ChangeTypeUnpublish = internaldomain.ChangeTypeUnpublish
	ChangeTypeRollback  = internaldomain.ChangeTypeRollback
)

// Lang identifies one of the site's supported languages.
type Lang = internaldomain.Lang

const (
	LangEN = internaldomain.LangEN
	LangDA = internaldomain.LangDA
)
