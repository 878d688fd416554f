// ABOUTME: Charm KV article store with cloud sync
// ABOUTME: Persists scraped articles under prefixed keys with a URL lookup index
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"

	"github.com/alex-peresunko/news-scraper/internal/models"
	"github.com/alex-peresunko/news-scraper/internal/util"
)

// Key prefixes for stored entity types
const (
	ArticlePrefix = "article:"
	URLPrefix     = "url:"
)

// ErrNotFound is returned when no article matches the requested ID or URL
var ErrNotFound = errors.New("article not found")

// Config holds charm KV configuration
type Config struct {
	Host     string
	DBName   string
	AutoSync bool
}

// DefaultConfig returns default configuration for the article store
func DefaultConfig() *Config {
	host := os.Getenv("CHARM_HOST")
	if host == "" {
		host = "cloud.charm.sh"
	}
	return &Config{
		Host:     host,
		DBName:   "news-scraper",
		AutoSync: true,
	}
}

// Store wraps charm KV for article persistence
type Store struct {
	kv     *kv.KV
	config *Config
	mu     sync.Mutex
}

// Open opens the charm KV database for the given config
func Open(cfg *Config) (*Store, error) {
	if cfg.Host != "" {
		os.Setenv("CHARM_HOST", cfg.Host)
	}

	db, err := kv.OpenWithDefaults(cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to open charm kv: %w", err)
	}

	s := &Store{
		kv:     db,
		config: cfg,
	}

	// Pull remote data on startup
	if cfg.AutoSync {
		_ = db.Sync()
	}

	return s, nil
}

// Close closes the KV database
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv != nil {
		err := s.kv.Close()
		s.kv = nil
		return err
	}
	return nil
}

// syncIfEnabled pushes to the cloud after writes. Caller holds the lock.
func (s *Store) syncIfEnabled() {
	if s.config.AutoSync {
		_ = s.kv.Sync()
	}
}

// SaveArticle stores an article and indexes it by normalized URL
func (s *Store) SaveArticle(article *models.Article) error {
	if article == nil {
		return fmt.Errorf("article is nil")
	}
	if article.ArticleID == "" {
		return fmt.Errorf("article has no ID")
	}

	data, err := json.Marshal(article)
	if err != nil {
		return fmt.Errorf("failed to marshal article: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Set([]byte(articleKey(article.ArticleID)), data); err != nil {
		return fmt.Errorf("failed to store article %s: %w", article.ArticleID, err)
	}

	normalized := util.NormalizeURL(article.URL)
	if err := s.kv.Set([]byte(urlKey(normalized)), []byte(article.ArticleID)); err != nil {
		return fmt.Errorf("failed to index article URL: %w", err)
	}

	s.syncIfEnabled()
	return nil
}

// GetArticle retrieves an article by ID
func (s *Store) GetArticle(articleID string) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.getArticleLocked(articleID)
}

// getArticleLocked reads one article. Caller holds the lock.
func (s *Store) getArticleLocked(articleID string) (*models.Article, error) {
	data, err := s.kv.Get([]byte(articleKey(articleID)))
	if err != nil || len(data) == 0 {
		return nil, fmt.Errorf("article %s: %w", articleID, ErrNotFound)
	}

	var article models.Article
	if err := json.Unmarshal(data, &article); err != nil {
		return nil, fmt.Errorf("failed to decode article %s: %w", articleID, err)
	}
	return &article, nil
}

// GetArticleByURL retrieves an article by its URL, matching on the
// normalized form so tracking parameters do not defeat the lookup
func (s *Store) GetArticleByURL(rawURL string) (*models.Article, error) {
	if !util.IsValidURL(rawURL) {
		return nil, fmt.Errorf("invalid URL %q", rawURL)
	}
	normalized := util.NormalizeURL(rawURL)

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.kv.Get([]byte(urlKey(normalized)))
	if err != nil || len(id) == 0 {
		return nil, fmt.Errorf("url %s: %w", normalized, ErrNotFound)
	}

	return s.getArticleLocked(string(id))
}

// ListArticles returns all stored articles, newest first
func (s *Store) ListArticles() ([]*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.listKeysLocked(ArticlePrefix)
	if err != nil {
		return nil, err
	}

	articles := make([]*models.Article, 0, len(keys))
	for _, key := range keys {
		data, err := s.kv.Get([]byte(key))
		if err != nil || len(data) == 0 {
			continue
		}
		var article models.Article
		if err := json.Unmarshal(data, &article); err != nil {
			continue
		}
		articles = append(articles, &article)
	}

	sortArticles(articles)
	return articles, nil
}

// CountArticles returns the number of stored articles
func (s *Store) CountArticles() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.listKeysLocked(ArticlePrefix)
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// DeleteArticle removes an article and its URL index entry
func (s *Store) DeleteArticle(articleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	article, err := s.getArticleLocked(articleID)
	if err != nil {
		return err
	}

	_ = s.kv.Delete([]byte(urlKey(util.NormalizeURL(article.URL))))

	if err := s.kv.Delete([]byte(articleKey(articleID))); err != nil {
		return fmt.Errorf("failed to delete article %s: %w", articleID, err)
	}

	s.syncIfEnabled()
	return nil
}

// listKeysLocked returns all keys with the given prefix. Caller holds the lock.
func (s *Store) listKeysLocked(prefix string) ([]string, error) {
	keys, err := s.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	var result []string
	for _, key := range keys {
		keyStr := string(key)
		if strings.HasPrefix(keyStr, prefix) {
			result = append(result, keyStr)
		}
	}
	return result, nil
}

// Sync manually triggers a sync with the cloud
func (s *Store) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Sync()
}

// Reset wipes all local data
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Reset()
}

// ID returns the charm user ID
func (s *Store) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("failed to create charm client: %w", err)
	}
	return cc.ID()
}

// AuthorizedKeys returns the list of linked devices/keys
func (s *Store) AuthorizedKeys() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("failed to create charm client: %w", err)
	}
	return cc.AuthorizedKeys()
}

// UnlinkKey removes an authorized key from the account
func (s *Store) UnlinkKey(key string) error {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return fmt.Errorf("failed to create charm client: %w", err)
	}
	return cc.UnlinkAuthorizedKey(key)
}

// sortArticles orders articles newest first by scrape time
func sortArticles(articles []*models.Article) {
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].ScrapedAt.After(articles[j].ScrapedAt)
	})
}

// articleKey generates the storage key for an article
func articleKey(articleID string) string {
	return ArticlePrefix + articleID
}

// urlKey generates the URL index key for a normalized URL
func urlKey(normalizedURL string) string {
	return URLPrefix + normalizedURL
}
