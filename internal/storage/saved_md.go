// ABOUTME: Markdown-based local storage for posts saved while browsing.
// ABOUTME: Stores each post as a frontmatter file with filtering and dedup by URL.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"blogdeck/internal/models"
)

// SavedPost is a post captured locally, with the moment it was saved.
type SavedPost struct {
	ID      uuid.UUID
	Post    models.Post
	SavedAt time.Time
}

// SavedStore keeps saved posts as markdown files in a data directory.
type SavedStore struct {
	dataDir string
}

// savedFrontmatter is the YAML frontmatter for saved post files.
type savedFrontmatter struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title,omitempty"`
	Author   string `yaml:"author,omitempty"`
	URL      string `yaml:"url,omitempty"`
	Tags     string `yaml:"tags,omitempty"`
	Category string `yaml:"category,omitempty"`
	PubDate  string `yaml:"pub_date,omitempty"`
	SavedAt  string `yaml:"saved_at"`
}

// NewSavedStore creates a saved-post store rooted at dataDir.
func NewSavedStore(dataDir string) (*SavedStore, error) {
	return &SavedStore{dataDir: dataDir}, nil
}

// Save persists a post to disk. Saving a post whose URL is already stored
// replaces the earlier copy.
func (s *SavedStore) Save(post models.Post) (*SavedPost, error) {
	if post.URL != "" {
		if existing, err := s.findByURL(post.URL); err == nil && existing != "" {
			_ = os.Remove(existing)
		}
	}

	saved := &SavedPost{
		ID:      uuid.New(),
		Post:    post,
		SavedAt: time.Now(),
	}

	dateDir := saved.SavedAt.Format("2006-01-02")
	filename := saved.SavedAt.Format("15-04-05") + "-" + saved.ID.String()[:8] + ".md"
	path := filepath.Join(s.dataDir, dateDir, filename)

	fm := savedFrontmatter{
		ID:       saved.ID.String(),
		Title:    post.Title,
		Author:   post.Author,
		URL:      post.URL,
		Tags:     post.Tags,
		Category: post.Category,
		PubDate:  post.PubDate,
		SavedAt:  saved.SavedAt.UTC().Format(time.RFC3339Nano),
	}

	content, err := renderFrontmatter(fm, post.Content+"\n")
	if err != nil {
		return nil, fmt.Errorf("failed to render saved post: %w", err)
	}

	if err := atomicWrite(path, []byte(content)); err != nil {
		return nil, err
	}
	return saved, nil
}

// List returns saved posts, newest first. A non-empty query keeps only
// posts whose title, content, or tags contain it, case-insensitively.
func (s *SavedStore) List(query string) ([]*SavedPost, error) {
	if _, err := os.Stat(s.dataDir); os.IsNotExist(err) {
		return nil, nil
	}

	dateDirs, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))

	var all []*SavedPost
	for _, dateDir := range dateDirs {
		if !dateDir.IsDir() {
			continue
		}
		dirPath := filepath.Join(s.dataDir, dateDir.Name())
		files, err := os.ReadDir(dirPath)
		if err != nil {
			continue
		}
		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), ".md") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dirPath, file.Name()))
			if err != nil {
				continue
			}
			saved, err := parseSavedPost(string(data))
			if err != nil {
				continue
			}
			if query != "" && !matchesQuery(saved, query) {
				continue
			}
			all = append(all, saved)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].SavedAt.After(all[j].SavedAt)
	})
	return all, nil
}

// Close releases any resources held by the store.
func (s *SavedStore) Close() error {
	return nil
}

// findByURL returns the file path of the saved post with the given URL.
func (s *SavedStore) findByURL(url string) (string, error) {
	var found string
	err := filepath.Walk(s.dataDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil
		}
		yamlStr, _ := splitFrontmatter(string(data))
		var fm savedFrontmatter
		if yaml.Unmarshal([]byte(yamlStr), &fm) != nil {
			return nil
		}
		if fm.URL == url {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return found, nil
}

func matchesQuery(saved *SavedPost, query string) bool {
	haystacks := []string{saved.Post.Title, saved.Post.Content, saved.Post.Tags}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), query) {
			return true
		}
	}
	return false
}

// parseSavedPost parses a frontmatter file into a SavedPost.
func parseSavedPost(content string) (*SavedPost, error) {
	yamlStr, body := splitFrontmatter(content)
	if yamlStr == "" {
		return nil, fmt.Errorf("no frontmatter found")
	}

	var fm savedFrontmatter
	if err := yaml.Unmarshal([]byte(yamlStr), &fm); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	id, err := uuid.Parse(fm.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID: %w", err)
	}
	savedAt, err := time.Parse(time.RFC3339Nano, fm.SavedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	return &SavedPost{
		ID: id,
		Post: models.Post{
			Title:    fm.Title,
			Content:  strings.TrimSpace(body),
			Author:   fm.Author,
			URL:      fm.URL,
			Tags:     fm.Tags,
			Category: fm.Category,
			PubDate:  fm.PubDate,
		},
		SavedAt: savedAt,
	}, nil
}

// renderFrontmatter produces a markdown document with YAML frontmatter.
func renderFrontmatter(fm any, body string) (string, error) {
	data, err := yaml.Marshal(fm)
	if err != nil {
		return "", err
	}
	return "---\n" + string(data) + "---\n\n" + body, nil
}

// splitFrontmatter separates the YAML frontmatter from the body. Returns an
// empty yaml string when the document has no frontmatter fence.
func splitFrontmatter(content string) (yamlStr, body string) {
	if !strings.HasPrefix(content, "---\n") {
		return "", content
	}
	rest := content[4:]
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return "", content
	}
	yamlStr = rest[:idx+1]
	body = rest[idx+4:]
	if after, ok := strings.CutPrefix(body, "\n"); ok {
		body = after
	}
	return yamlStr, strings.TrimPrefix(body, "\n")
}

// atomicWrite writes data via a temp file rename so readers never observe
// a partial file.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
