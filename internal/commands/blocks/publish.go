package blockscmd

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	command "github.com/goliatone/go-command"
	"github.com/google/uuid"

	"github.com/verdanta/cms/internal/blocks"
	"github.com/verdanta/cms/internal/commands"
	"github.com/verdanta/cms/internal/domain"
	"github.com/verdanta/cms/internal/logging"
	"github.com/verdanta/cms/pkg/interfaces"
)

const publishBlockMessageType = "cms.blocks.publish"

// PublishBlockCommand transitions a content block between draft and published.
// An empty Status publishes.
type PublishBlockCommand struct {
	BlockID   uuid.UUID
	Status    string
	ChangedBy string
}

// Type implements command.Message.
func (PublishBlockCommand) Type() string { return publishBlockMessageType }

// Validate satisfies command.Message.
func (c PublishBlockCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BlockID, validation.By(requireUUID)),
		validation.Field(&c.Status, validation.In("", string(domain.StatusDraft), string(domain.StatusPublished))),
	)
}

// PublishBlockHandler wraps block status transitions.
type PublishBlockHandler struct {
	service blocks.Service
	logger  interfaces.Logger
	timeout time.Duration
}

// PublishBlockOption customises the publish handler.
type PublishBlockOption func(*PublishBlockHandler)

// PublishBlockWithTimeout overrides the default execution timeout.
func PublishBlockWithTimeout(timeout time.Duration) PublishBlockOption {
	return func(h *PublishBlockHandler) {
		h.timeout = timeout
	}
}

// NewPublishBlockHandler constructs a handler wired to the provided block service.
func NewPublishBlockHandler(service blocks.Service, logger interfaces.Logger, opts ...PublishBlockOption) *PublishBlockHandler {
	handler := &PublishBlockHandler{
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

// Execute satisfies command.Commander[PublishBlockCommand].
func (h *PublishBlockHandler) Execute(ctx context.Context, msg PublishBlockCommand) error {
	if err := commands.WrapValidationError(command.ValidateMessage(msg)); err != nil {
		return err
	}
	ctx = commands.EnsureContext(ctx)
	ctx, cancel := commands.WithCommandTimeout(ctx, h.timeout)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return commands.WrapContextError(err)
	}

	status := domain.StatusPublished
	if msg.Status != "" {
		status = domain.ParseStatus(msg.Status)
	}
	if _, err := h.service.SetStatus(ctx, blocks.SetBlockStatusRequest{
		ID:        msg.BlockID,
		Status:    status,
		ChangedBy: msg.ChangedBy,
	}); err != nil {
		return commands.WrapExecuteError(err)
	}

	logging.WithFields(h.logger, map[string]any{
		"operation": "blocks.publish",
		"block_id":  msg.BlockID.String(),
		"status":    string(status),
	}).Info("blocks.command.publish.completed")
	return nil
}
