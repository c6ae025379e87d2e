package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"sword-picker/internal/versions"
)

const baseURL = "https://bolls.life"

// ErrStatus is returned when bolls answers with a non-200 status.
var ErrStatus = errors.New("unexpected API status")

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    baseURL,
	}
}

// SetBaseURL points the client at another bolls-compatible host.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

type Translation struct {
	ShortName string `json:"short_name"`
	FullName  string `json:"full_name"`
	Updated   int64  `json:"updated"`
	Dir       string `json:"dir,omitempty"`
}

type LanguageGroup struct {
	Language     string        `json:"language"`
	Translations []Translation `json:"translations"`
}

type Verse struct {
	PK          int    `json:"pk"`
	Verse       int    `json:"verse"`
	Text        string `json:"text"`
	Translation string `json:"translation,omitempty"`
	Book        int    `json:"book,omitempty"`
	Chapter     int    `json:"chapter,omitempty"`
}

type ParallelVerseRequest struct {
	Translations []string `json:"translations"`
	Verses       []int    `json:"verses"`
	Chapter      int      `json:"chapter"`
	Book         int      `json:"book"`
}

// GetLanguages fetches the raw language groups bolls publishes.
func (c *Client) GetLanguages(ctx context.Context) ([]LanguageGroup, error) {
	url := fmt.Sprintf("%s/static/bolls/app/views/languages.json", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var groups []LanguageGroup
	if err := c.do(req, &groups); err != nil {
		return nil, fmt.Errorf("fetch languages: %w", err)
	}
	return groups, nil
}

// GetCatalog fetches every bolls translation as a Bible catalog, in the
// order bolls lists them.
func (c *Client) GetCatalog(ctx context.Context) (*versions.Catalog, error) {
	groups, err := c.GetLanguages(ctx)
	if err != nil {
		return nil, err
	}
	return CatalogFromGroups(groups), nil
}

// CatalogFromGroups converts bolls language groups into catalog records.
func CatalogFromGroups(groups []LanguageGroup) *versions.Catalog {
	var records []versions.Record
	for _, group := range groups {
		code := LanguageCode(group.Language)
		for _, t := range group.Translations {
			records = append(records, versions.Record{
				Initials:     t.ShortName,
				Name:         t.FullName,
				LanguageCode: code,
				LanguageName: group.Language,
				Category:     versions.CategoryBible,
			})
		}
	}
	slog.Info("catalog converted", "groups", len(groups), "versions", len(records))
	return versions.NewCatalog(records, defaultFeatured, versions.DefaultAlways)
}

// GetParallelVerses fetches the same verses from several translations.
func (c *Client) GetParallelVerses(ctx context.Context, r ParallelVerseRequest) (map[string][]Verse, error) {
	url := fmt.Sprintf("%s/get-parallel-verses/", c.baseURL)

	jsonData, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	// Response is one verse list per requested translation, in order.
	var rawResponse [][]Verse
	if err := c.do(req, &rawResponse); err != nil {
		return nil, fmt.Errorf("fetch parallel verses: %w", err)
	}

	result := make(map[string][]Verse)
	for i, translation := range r.Translations {
		if i < len(rawResponse) {
			result[translation] = rawResponse[i]
		}
	}
	return result, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w %d: %s", ErrStatus, resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
