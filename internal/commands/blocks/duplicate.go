package blockscmd

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	command "github.com/goliatone/go-command"
	"github.com/google/uuid"

	"github.com/verdanta/cms/internal/blocks"
	"github.com/verdanta/cms/internal/commands"
	"github.com/verdanta/cms/internal/logging"
	"github.com/verdanta/cms/pkg/interfaces"
)

const duplicateBlockMessageType = "cms.blocks.duplicate"

// DuplicateBlockCommand clones an existing block under a derived key as a draft.
type DuplicateBlockCommand struct {
	BlockID   uuid.UUID
	ChangedBy string
}

// Type implements command.Message.
func (DuplicateBlockCommand) Type() string { return duplicateBlockMessageType }

// Validate satisfies command.Message.
func (c DuplicateBlockCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BlockID, validation.By(requireUUID)),
	)
}

// DuplicateBlockHandler wraps block duplication.
type DuplicateBlockHandler struct {
	service blocks.Service
	logger  interfaces.Logger
	timeout time.Duration
}

// DuplicateBlockOption customises the duplicate handler.
type DuplicateBlockOption func(*DuplicateBlockHandler)

// DuplicateBlockWithTimeout overrides the default execution timeout.
func DuplicateBlockWithTimeout(timeout time.Duration) DuplicateBlockOption {
	return func(h *DuplicateBlockHandler) {
		h.timeout = timeout
	}
}

// NewDuplicateBlockHandler constructs a handler wired to the provided block service.
func NewDuplicateBlockHandler(service blocks.Service, logger interfaces.Logger, opts ...DuplicateBlockOption) *DuplicateBlockHandler {
	handler := &DuplicateBlockHandler{
		service: service,
		logger:  commands.EnsureLogger(logger),
		timeout: commands.DefaultCommandTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(handler)
		}
	}
	return handler
}

// Execute satisfies command.Commander[DuplicateBlockCommand].
func (h *DuplicateBlockHandler) Execute(ctx context.Context, msg DuplicateBlockCommand) error {
	if err := commands.WrapValidationError(command.ValidateMessage(msg)); err != nil {
		return err
	}
	ctx = commands.EnsureContext(ctx)
	ctx, cancel := commands.WithCommandTimeout(ctx, h.timeout)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return commands.WrapContextError(err)
	}

	clone, err := h.service.Duplicate(ctx, blocks.DuplicateBlockRequest{
		ID:        msg.BlockID,
		ChangedBy: msg.ChangedBy,
	})
	if err != nil {
		return commands.WrapExecuteError(err)
	}

	logging.WithFields(h.logger, map[string]any{
		"operation": "blocks.duplicate",
		"block_id":  msg.BlockID.String(),
		"copy_id":   clone.ID.String(),
		"copy_key":  clone.BlockKey,
	}).Info("blocks.command.duplicate.completed")
	return nil
}
