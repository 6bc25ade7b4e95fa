package pagemap

import (
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/verdanta/cms/internal/domain"
)

// RouterOptions configures the go-urlkit backed public route resolver.
type RouterOptions struct {
	Manager      *urlkit.RouteManager
	DefaultGroup string
	LangGroups   map[string]string
	SlugParam    string
}

// Router resolves localized public page URLs through a go-urlkit RouteManager.
// English routes live in the default group while Danish routes live in a
// nested group carrying the translated paths (/products vs /da/produkter).
type Router struct {
	manager *urlkit.RouteManager

	defaultGroup string
	langGroups   map[string]string
	slugParam    string

	groupCache map[string]*urlkit.Group
	mu         sync.RWMutex
}

// NewRouter constructs a resolver backed by go-urlkit.
func NewRouter(opts RouterOptions) *Router {
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}
	return &Router{
		manager:      opts.Manager,
		defaultGroup: strings.TrimSpace(opts.DefaultGroup),
		langGroups:   opts.LangGroups,
		slugParam:    opts.SlugParam,
		groupCache:   make(map[string]*urlkit.Group),
	}
}

// PageURL builds the URL for a page route in the requested language.
func (r *Router) PageURL(lang domain.Lang, route string) (string, error) {
	return r.build(lang, route, nil)
}

// DetailURL builds the URL for a slug-addressed detail route, such as a
// product or journal entry.
func (r *Router) DetailURL(lang domain.Lang, route, slug string) (string, error) {
	if strings.TrimSpace(slug) == "" {
		return "", fmt.Errorf("pagemap: slug is required for route %q", route)
	}
	return r.build(lang, route, map[string]any{r.slugParam: slug})
}

func (r *Router) build(lang domain.Lang, route string, params map[string]any) (string, error) {
	if r == nil || r.manager == nil {
		return "", fmt.Errorf("pagemap: route manager not configured")
	}
	route = strings.TrimSpace(route)
	if route == "" {
		return "", fmt.Errorf("pagemap: route is required")
	}

	groupPath := r.defaultGroup
	if r.langGroups != nil {
		if path, ok := r.langGroups[string(lang)]; ok && strings.TrimSpace(path) != "" {
			groupPath = strings.TrimSpace(path)
		}
	}
	if groupPath == "" {
		return "", fmt.Errorf("pagemap: no route group for language %q", lang)
	}

	group, err := r.groupForPath(groupPath)
	if err != nil {
		return "", err
	}

	builder, err := r.safeBuilder(group, route)
	if err != nil {
		return "", err
	}
	for key, val := range params {
		builder.WithParam(key, val)
	}
	return builder.Build()
}

func (r *Router) groupForPath(path string) (*urlkit.Group, error) {
	r.mu.RLock()
	group, ok := r.groupCache[path]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	root, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	current := root
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.groupCache[path] = current
	r.mu.Unlock()
	return current, nil
}

func (r *Router) safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("pagemap: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			builder = nil
			err = fmt.Errorf("pagemap: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, nil
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, fmt.Errorf("pagemap: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("pagemap: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, nil
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	if parent == nil {
		return nil, fmt.Errorf("pagemap: parent group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("pagemap: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, nil
}
