package commands

import (
	"errors"

	command "github.com/goliatone/go-command"

	blockscmd "github.com/verdanta/cms/internal/commands/blocks"
	"github.com/verdanta/cms/internal/di"
	"github.com/verdanta/cms/internal/logging"
	"github.com/verdanta/cms/pkg/interfaces"
)

// CommandRegistry records command handlers so hosts can expose them via CLI or cron.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandDispatcher subscribes command handlers to a dispatcher implementation.
type CommandDispatcher interface {
	RegisterCommand(handler any) (CommandSubscription, error)
}

// CommandSubscription allows hosts to tear down dispatcher subscriptions.
type CommandSubscription interface {
	Unsubscribe()
}

// CronRegistrar registers command handlers with a cron scheduler.
type CronRegistrar func(command.HandlerConfig, any) error

// RegistrationOptions configures how handlers are registered during construction.
type RegistrationOptions struct {
	Registry       CommandRegistry
	Dispatcher     CommandDispatcher
	CronRegistrar  CronRegistrar
	LoggerProvider interfaces.LoggerProvider
}

// RegistrationResult captures the constructed command handlers and any dispatcher subscriptions.
type RegistrationResult struct {
	Handlers      []any
	Subscriptions []CommandSubscription

	Publish   *blockscmd.PublishBlockHandler
	Restore   *blockscmd.RestoreBlockVersionHandler
	Duplicate *blockscmd.DuplicateBlockHandler
}

// RegisterContainerCommands builds the command handlers exposed by the provided
// container and optionally registers them with registry/dispatcher/cron
// integrations.
func RegisterContainerCommands(container *di.Container, opts RegistrationOptions) (*RegistrationResult, error) {
	result := &RegistrationResult{}
	if container == nil {
		return result, nil
	}

	provider := opts.LoggerProvider
	if provider == nil {
		provider = container.LoggerProvider()
	}
	logger := commandLogger(provider)

	var errs error
	register := func(handler any) {
		if handler == nil {
			return
		}
		result.Handlers = append(result.Handlers, handler)

		if opts.Registry != nil {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}

		if opts.Dispatcher != nil {
			subscription, err := opts.Dispatcher.RegisterCommand(handler)
			if err != nil {
				errs = errors.Join(errs, err)
			} else if subscription != nil {
				result.Subscriptions = append(result.Subscriptions, subscription)
			}
		}

		if opts.CronRegistrar != nil {
			if cronCmd, ok := handler.(command.CronCommand); ok {
				if err := opts.CronRegistrar(cronCmd.CronOptions(), cronCmd.CronHandler()); err != nil {
					errs = errors.Join(errs, err)
				}
			}
		}
	}

	if service := container.BlockService(); service != nil {
		result.Publish = blockscmd.NewPublishBlockHandler(service, logger)
		result.Restore = blockscmd.NewRestoreBlockVersionHandler(service, logger)
		result.Duplicate = blockscmd.NewDuplicateBlockHandler(service, logger)

		register(result.Publish)
		register(result.Restore)
		register(result.Duplicate)
	}

	return result, errs
}

func commandLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	if provider == nil {
		return logging.NoOp()
	}
	return logging.ModuleLogger(provider, "cms.commands")
}
