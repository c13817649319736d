// Package fs writes scraped articles to disk as markdown files.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/fwojciec/mdscrape"
)

// MaxFilenameLength is the maximum length of a filename stem, in characters.
const MaxFilenameLength = 100

// DefaultFilename is used when a title sanitizes to nothing.
const DefaultFilename = "article"

var (
	reservedReplacer = strings.NewReplacer(
		"<", "-", ">", "-", ":", "-", `"`, "-",
		"/", "-", `\`, "-", "|", "-", "?", "-", "*", "-",
	)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Filename converts an article title to a filename stem. Characters that
// are reserved on common filesystems become "-", whitespace runs become
// "_", and the result is cut to MaxFilenameLength characters.
func Filename(title string) string {
	name := reservedReplacer.Replace(title)
	name = whitespaceRun.ReplaceAllString(name, "_")
	if r := []rune(name); len(r) > MaxFilenameLength {
		name = string(r[:MaxFilenameLength])
	}
	if name == "" {
		return DefaultFilename
	}
	return name
}

// Ensure Writer implements mdscrape.ArticleWriter at compile time.
var _ mdscrape.ArticleWriter = (*Writer)(nil)

// Writer writes articles as <dir>/<Filename(title)>.md. Files left by
// earlier runs are overwritten; an article whose name is already taken by
// this Writer gets the first free numbered suffix instead. Names are
// compared case-insensitively.
type Writer struct {
	baseDir string

	mu    sync.Mutex
	taken map[string]bool
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, taken: make(map[string]bool)}
}

// CreateArticle writes the article's assembled markdown to disk.
func (w *Writer) CreateArticle(ctx context.Context, article *mdscrape.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	return os.WriteFile(w.Path(article.Title), []byte(article.Markdown), 0644)
}

// Path reserves and returns the file path for the next article titled title.
func (w *Writer) Path(title string) string {
	base := Filename(title)

	w.mu.Lock()
	defer w.mu.Unlock()

	stem := base
	for n := 2; w.taken[strings.ToLower(stem)]; n++ {
		stem = fmt.Sprintf("%s-%d", base, n)
	}
	w.taken[strings.ToLower(stem)] = true

	return filepath.Join(w.baseDir, stem+".md")
}
