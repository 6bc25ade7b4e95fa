package posts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/verdanta/cms/internal/domain"
	"github.com/verdanta/cms/internal/logging"
	"github.com/verdanta/cms/pkg/interfaces"
)

var (
	ErrPostServiceRequired = errors.New("posts importer: post service is required")
	ErrFrontmatterSlug     = errors.New("posts importer: frontmatter slug or title_en is required")
)

// bodySeparator splits the English and Danish bodies inside one markdown file.
const bodySeparator = "\n---da---\n"

// Document is one parsed markdown file ready for import.
type Document struct {
	Path     string
	Front    FrontMatter
	BodyEN   string
	BodyDA   string
	Modified time.Time
}

// FrontMatter carries the bilingual journal metadata read from a file header.
type FrontMatter struct {
	TitleEN   string    `yaml:"title_en"`
	TitleDA   string    `yaml:"title_da"`
	Slug      string    `yaml:"slug"`
	Date      time.Time `yaml:"date"`
	Status    string    `yaml:"status"`
	ExcerptEN string    `yaml:"excerpt_en"`
	ExcerptDA string    `yaml:"excerpt_da"`
	HeroImage string    `yaml:"hero_image"`
}

// ParseDocument extracts frontmatter and the markdown body from a source
// file. A `---da---` line splits the body into English and Danish halves;
// without it the whole body is treated as English.
func ParseDocument(path string, source []byte, modified time.Time) (*Document, error) {
	var front FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &front)
	if err != nil {
		return nil, fmt.Errorf("posts importer: parse frontmatter %s: %w", path, err)
	}

	bodyEN, bodyDA := splitBody(string(body))
	return &Document{
		Path:     path,
		Front:    front,
		BodyEN:   bodyEN,
		BodyDA:   bodyDA,
		Modified: modified,
	}, nil
}

// ImportResult summarises one importer run.
type ImportResult struct {
	Created int
	Updated int
	Skipped int
	Errors  []error
}

// Importer loads markdown journal files into the post service.
type Importer struct {
	posts  Service
	logger interfaces.Logger
}

// ImporterConfig encapsulates the importer dependencies.
type ImporterConfig struct {
	Posts  Service
	Logger interfaces.Logger
}

// NewImporter builds an Importer from the supplied configuration.
func NewImporter(cfg ImporterConfig) *Importer {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Importer{
		posts:  cfg.Posts,
		logger: logger,
	}
}

// ImportFS walks a filesystem for markdown files and imports each document.
// Existing posts are matched by slug and updated in place.
func (i *Importer) ImportFS(ctx context.Context, fsys fs.FS, root string) (*ImportResult, error) {
	if i.posts == nil {
		return nil, ErrPostServiceRequired
	}

	docs := []*Document{}
	err := fs.WalkDir(fsys, root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		source, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("posts importer: read %s: %w", path, err)
		}
		var modified time.Time
		if info, err := entry.Info(); err == nil {
			modified = info.ModTime()
		}
		doc, err := ParseDocument(path, source, modified)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return i.ImportDocuments(ctx, docs)
}

// ImportDocuments imports parsed documents, creating or updating by slug.
func (i *Importer) ImportDocuments(ctx context.Context, docs []*Document) (*ImportResult, error) {
	if i.posts == nil {
		return nil, ErrPostServiceRequired
	}

	result := &ImportResult{}
	for _, doc := range docs {
		if err := i.importDocument(ctx, doc, result); err != nil {
			result.Errors = append(result.Errors, err)
		}
	}
	if len(result.Errors) > 0 {
		return result, result.Errors[0]
	}
	return result, nil
}

func (i *Importer) importDocument(ctx context.Context, doc *Document, result *ImportResult) error {
	if doc == nil {
		result.Skipped++
		return nil
	}
	if strings.TrimSpace(doc.Front.Slug) == "" && strings.TrimSpace(doc.Front.TitleEN) == "" {
		return ErrFrontmatterSlug
	}
	postSlug, err := resolveSlug(doc.Front.Slug, doc.Front.TitleEN)
	if err != nil {
		return fmt.Errorf("posts importer: slug for %s: %w", doc.Path, err)
	}

	status := doc.Front.Status
	if status == "" {
		status = string(domain.StatusPublished)
	}
	var publishedAt *time.Time
	if !doc.Front.Date.IsZero() {
		date := doc.Front.Date
		publishedAt = &date
	}

	req := CreatePostRequest{
		Slug:         postSlug,
		TitleEN:      doc.Front.TitleEN,
		TitleDA:      doc.Front.TitleDA,
		ExcerptEN:    optionalString(doc.Front.ExcerptEN),
		ExcerptDA:    optionalString(doc.Front.ExcerptDA),
		BodyEN:       doc.BodyEN,
		BodyDA:       doc.BodyDA,
		HeroImageURL: optionalString(doc.Front.HeroImage),
		Status:       status,
		PublishedAt:  publishedAt,
		ChangedBy:    "importer",
	}

	created, err := i.posts.Create(ctx, req)
	if err == nil {
		i.logger.Debug("post imported", "slug", created.Slug, "path", doc.Path)
		result.Created++
		return nil
	}
	if !errors.Is(err, ErrSlugExists) {
		return fmt.Errorf("posts importer: create %s: %w", doc.Path, err)
	}

	existing, err := i.posts.GetBySlug(ctx, req.Slug, false)
	if err != nil {
		return fmt.Errorf("posts importer: lookup %s: %w", req.Slug, err)
	}

	if _, err := i.posts.Update(ctx, UpdatePostRequest{
		ID:           existing.ID,
		TitleEN:      &req.TitleEN,
		TitleDA:      &req.TitleDA,
		ExcerptEN:    req.ExcerptEN,
		ExcerptDA:    req.ExcerptDA,
		BodyEN:       &req.BodyEN,
		BodyDA:       &req.BodyDA,
		HeroImageURL: req.HeroImageURL,
		ChangedBy:    "importer",
	}); err != nil {
		return fmt.Errorf("posts importer: update %s: %w", req.Slug, err)
	}
	result.Updated++
	return nil
}

func splitBody(body string) (string, string) {
	if idx := strings.Index(body, bodySeparator); idx >= 0 {
		return strings.TrimSpace(body[:idx]), strings.TrimSpace(body[idx+len(bodySeparator):])
	}
	return strings.TrimSpace(body), ""
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
