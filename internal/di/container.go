package di

import (
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"

	admincontent "github.com/verdanta/cms/internal/admin/content"
	adminhistory "github.com/verdanta/cms/internal/admin/history"
	"github.com/verdanta/cms/internal/blocks"
	"github.com/verdanta/cms/internal/jobs"
	"github.com/verdanta/cms/internal/logging"
	"github.com/verdanta/cms/internal/logging/console"
	"github.com/verdanta/cms/internal/logging/gologger"
	"github.com/verdanta/cms/internal/pagemap"
	"github.com/verdanta/cms/internal/posts"
	"github.com/verdanta/cms/internal/products"
	"github.com/verdanta/cms/internal/quotations"
	"github.com/verdanta/cms/internal/runtimeconfig"
	"github.com/verdanta/cms/internal/settings"
	"github.com/verdanta/cms/internal/translations"
	"github.com/verdanta/cms/internal/validation"
	"github.com/verdanta/cms/pkg/interfaces"
)

// Container wires module dependencies. Without a database binding every
// repository falls back to its in-memory implementation, which keeps tests
// and scaffolding runs self-contained.
type Container struct {
	Config runtimeconfig.Config

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	loggerProvider interfaces.LoggerProvider
	audit          jobs.AuditRecorder

	metadataValidator blocks.MetadataValidator
	routes            *pagemap.Router

	blockRepo       blocks.BlockRepository
	productRepo     products.ProductRepository
	postRepo        posts.PostRepository
	translationRepo translations.TranslationRepository
	settingRepo     settings.SettingRepository
	quotationRepo   quotations.QuotationRepository

	blockSvc       blocks.Service
	productSvc     products.Service
	postSvc        posts.Service
	translationSvc translations.Service
	settingSvc     settings.Service
	quotationSvc   quotations.Service

	contentAdmin *admincontent.Service
	history      *adminhistory.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB binds the container to a database. All repositories switch to
// their bun implementations.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the repository cache service and key serializer.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithAuditRecorder overrides the audit trail sink.
func WithAuditRecorder(recorder jobs.AuditRecorder) Option {
	return func(c *Container) {
		c.audit = recorder
	}
}

// WithMetadataValidator installs per-section metadata schemas on the block service.
func WithMetadataValidator(validator blocks.MetadataValidator) Option {
	return func(c *Container) {
		c.metadataValidator = validator
	}
}

// WithRouter overrides the public route resolver built from Config.Navigation.
func WithRouter(router *pagemap.Router) Option {
	return func(c *Container) {
		c.routes = router
	}
}

// WithBlockService overrides the default block service binding.
func WithBlockService(svc blocks.Service) Option {
	return func(c *Container) {
		c.blockSvc = svc
	}
}

// WithProductService overrides the default product service binding.
func WithProductService(svc products.Service) Option {
	return func(c *Container) {
		c.productSvc = svc
	}
}

// WithPostService overrides the default journal service binding.
func WithPostService(svc posts.Service) Option {
	return func(c *Container) {
		c.postSvc = svc
	}
}

// WithTranslationService overrides the default translation service binding.
func WithTranslationService(svc translations.Service) Option {
	return func(c *Container) {
		c.translationSvc = svc
	}
}

// WithSettingService overrides the default setting service binding.
func WithSettingService(svc settings.Service) Option {
	return func(c *Container) {
		c.settingSvc = svc
	}
}

// WithQuotationService overrides the default quotation service binding.
func WithQuotationService(svc quotations.Service) Option {
	return func(c *Container) {
		c.quotationSvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) *Container {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:          cfg,
		cacheTTL:        cacheTTL,
		blockRepo:       blocks.NewMemoryBlockRepository(),
		productRepo:     products.NewMemoryProductRepository(),
		postRepo:        posts.NewMemoryPostRepository(),
		translationRepo: translations.NewMemoryTranslationRepository(),
		settingRepo:     settings.NewMemorySettingRepository(),
		quotationRepo:   quotations.NewMemoryQuotationRepository(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	c.configureLogging()
	c.configureNavigation()
	c.configureCacheDefaults()
	c.configureRepositories()
	c.configureAudit()
	c.configureServices()

	return c
}

func (c *Container) configureLogging() {
	if c.loggerProvider != nil {
		return
	}
	if !c.Config.Features.Logger {
		c.loggerProvider = nil
		return
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err == nil {
			c.loggerProvider = provider
			return
		}
		c.loggerProvider = console.NewProvider(console.Options{MinLevel: consoleLevel(c.Config.Logging.Level)})
	default:
		c.loggerProvider = console.NewProvider(console.Options{MinLevel: consoleLevel(c.Config.Logging.Level)})
	}
}

func (c *Container) configureNavigation() {
	if c.routes != nil {
		return
	}

	navCfg := c.Config.Navigation
	if navCfg.RouteConfig == nil {
		return
	}

	manager := urlkit.NewRouteManager(navCfg.RouteConfig)
	c.routes = pagemap.NewRouter(pagemap.RouterOptions{
		Manager:      manager,
		DefaultGroup: strings.TrimSpace(navCfg.URLKit.DefaultGroup),
		LangGroups:   navCfg.URLKit.LangGroups,
		SlugParam:    strings.TrimSpace(navCfg.URLKit.SlugParam),
	})
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() {
	if c.bunDB == nil {
		return
	}

	c.blockRepo = blocks.NewBunBlockRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.productRepo = products.NewBunProductRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.postRepo = posts.NewBunPostRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.translationRepo = translations.NewBunTranslationRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.settingRepo = settings.NewBunSettingRepository(c.bunDB)
	c.quotationRepo = quotations.NewBunQuotationRepository(c.bunDB)
}

func (c *Container) configureAudit() {
	if c.audit != nil {
		return
	}
	if c.bunDB != nil {
		c.audit = jobs.NewBunAuditRecorder(c.bunDB)
		return
	}
	c.audit = jobs.NewInMemoryAuditRecorder()
}

func (c *Container) configureServices() {
	if c.metadataValidator == nil && len(c.Config.Metadata.Schemas) > 0 {
		if validator, err := validation.NewMetadataValidator(c.Config.Metadata.Schemas); err == nil {
			c.metadataValidator = validator
		}
	}

	if c.blockSvc == nil {
		blockOpts := []blocks.ServiceOption{
			blocks.WithAuditRecorder(c.audit),
			blocks.WithLogger(c.moduleLogger("cms.blocks")),
		}
		if c.Config.Retention.Blocks > 0 {
			blockOpts = append(blockOpts, blocks.WithVersionRetentionLimit(c.Config.Retention.Blocks))
		}
		if c.metadataValidator != nil {
			blockOpts = append(blockOpts, blocks.WithMetadataValidator(c.metadataValidator))
		}
		c.blockSvc = blocks.NewService(c.blockRepo, blockOpts...)
	}

	if c.productSvc == nil {
		c.productSvc = products.NewService(c.productRepo,
			products.WithAuditRecorder(c.audit),
			products.WithLogger(c.moduleLogger("cms.products")),
		)
	}

	if c.postSvc == nil {
		c.postSvc = posts.NewService(c.postRepo,
			posts.WithAuditRecorder(c.audit),
			posts.WithLogger(c.moduleLogger("cms.posts")),
			posts.WithRenderer(posts.NewGoldmarkRenderer()),
		)
	}

	if c.translationSvc == nil {
		translationOpts := []translations.ServiceOption{
			translations.WithAuditRecorder(c.audit),
			translations.WithLogger(c.moduleLogger("cms.translations")),
		}
		if c.Config.Retention.Translations > 0 {
			translationOpts = append(translationOpts, translations.WithVersionRetentionLimit(c.Config.Retention.Translations))
		}
		c.translationSvc = translations.NewService(c.translationRepo, translationOpts...)
	}

	if c.settingSvc == nil {
		c.settingSvc = settings.NewService(c.settingRepo,
			settings.WithAuditRecorder(c.audit),
			settings.WithLogger(c.moduleLogger("cms.settings")),
		)
	}

	if c.quotationSvc == nil {
		c.quotationSvc = quotations.NewService(c.quotationRepo,
			quotations.WithAuditRecorder(c.audit),
			quotations.WithLogger(c.moduleLogger("cms.quotations")),
		)
	}

	c.contentAdmin = admincontent.NewService(c.blockSvc,
		admincontent.WithLogger(c.moduleLogger("cms.admin.content")),
	)
	c.history = adminhistory.NewService(c.blockSvc)
}

func (c *Container) moduleLogger(module string) interfaces.Logger {
	if c.loggerProvider == nil {
		return logging.NoOp()
	}
	return logging.ModuleLogger(c.loggerProvider, module)
}

// DB exposes the bound database, or nil when running on memory repositories.
func (c *Container) DB() *bun.DB {
	return c.bunDB
}

// LoggerProvider exposes the configured logger provider, which may be nil
// when the logging feature is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Routes exposes the public route resolver, or nil when no route
// configuration was supplied.
func (c *Container) Routes() *pagemap.Router {
	return c.routes
}

// AuditRecorder exposes the configured audit sink.
func (c *Container) AuditRecorder() jobs.AuditRecorder {
	return c.audit
}

// BlockService returns the configured content block service.
func (c *Container) BlockService() blocks.Service {
	return c.blockSvc
}

// ProductService returns the configured product catalog service.
func (c *Container) ProductService() products.Service {
	return c.productSvc
}

// PostService returns the configured journal service.
func (c *Container) PostService() posts.Service {
	return c.postSvc
}

// TranslationService returns the configured UI translation service.
func (c *Container) TranslationService() translations.Service {
	return c.translationSvc
}

// SettingService returns the configured site setting service.
func (c *Container) SettingService() settings.Service {
	return c.settingSvc
}

// QuotationService returns the configured quotation inquiry service.
func (c *Container) QuotationService() quotations.Service {
	return c.quotationSvc
}

// ContentAdmin returns the admin content manager service.
func (c *Container) ContentAdmin() *admincontent.Service {
	return c.contentAdmin
}

// History returns the version history panel service.
func (c *Container) History() *adminhistory.Service {
	return c.history
}

func consoleLevel(level string) *console.Level {
	var mapped console.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		mapped = console.LevelTrace
	case "debug":
		mapped = console.LevelDebug
	case "warn", "warning":
		mapped = console.LevelWarn
	case "error":
		mapped = console.LevelError
	case "fatal":
		mapped = console.LevelFatal
	case "info":
		mapped = console.LevelInfo
	default:
		return nil
	}
	return &mapped
}
