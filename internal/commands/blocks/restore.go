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

const restoreBlockVersionMessageType = "cms.blocks.version.restore"

// RestoreBlockVersionCommand applies a prior snapshot back onto the live block.
type RestoreBlockVersionCommand struct {
	BlockID    uuid.UUID
	Version    int
	RestoredBy string
}

// Type implements command.Message.
func (RestoreBlockVersionCommand) Type() string { return restoreBlockVersionMessageType }

// Validate satisfies command.Message.
func (c RestoreBlockVersionCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BlockID, validation.By(requireUUID)),
		validation.Field(&c.Version, validation.Required, validation.Min(1)),
	)
}

// RestoreBlockVersionHandler wraps version restores.
type RestoreBlockVersionHandler struct {
	service blocks.Service
	logger  interfaces.Logger
	timeout time.Duration
}

// RestoreBlockVersionOption customises the restore handler.
type RestoreBlockVersionOption func(*RestoreBlockVersionHandler)

// RestoreBlockVersionWithTimeout overrides the default execution timeout.
func RestoreBlockVersionWithTimeout(timeout time.Duration) RestoreBlockVersionOption {
	return func(h *RestoreBlockVersionHandler) {
		h.timeout = timeout
	}
}

// NewRestoreBlockVersionHandler constructs a handler wired to the provided block service.
func NewRestoreBlockVersionHandler(service blocks.Service, logger interfaces.Logger, opts ...RestoreBlockVersionOption) *RestoreBlockVersionHandler {
	handler := &RestoreBlockVersionHandler{
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

// Execute satisfies command.Commander[RestoreBlockVersionCommand].
func (h *RestoreBlockVersionHandler) Execute(ctx context.Context, msg RestoreBlockVersionCommand) error {
	if err := commands.WrapValidationError(command.ValidateMessage(msg)); err != nil {
		return err
	}
	ctx = commands.EnsureContext(ctx)
	ctx, cancel := commands.WithCommandTimeout(ctx, h.timeout)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return commands.WrapContextError(err)
	}

	if _, err := h.service.RestoreVersion(ctx, blocks.RestoreBlockVersionRequest{
		ID:         msg.BlockID,
		Version:    msg.Version,
		RestoredBy: msg.RestoredBy,
	}); err != nil {
		return commands.WrapExecuteError(err)
	}

	logging.WithFields(h.logger, map[string]any{
		"operation": "blocks.version.restore",
		"block_id":  msg.BlockID.String(),
		"version":   msg.Version,
	}).Info("blocks.command.version.restore.completed")
	return nil
}
