package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ScrapedRecipe is whatever the scraping sidecar managed to pull out of the
// page. Every field is optional; the import degrades gracefully around
// missing ones.
type ScrapedRecipe struct {
	Name         string   `json:"name"`
	ImageURL     string   `json:"imageUrl"`
	Instructions string   `json:"instructions"`
	Ingredients  []string `json:"ingredients"`
}

type ScraperService struct {
	client  *http.Client
	baseURL string
}

func NewScraperService() *ScraperService {
	return &ScraperService{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: os.Getenv("SCRAPER_URL"),
	}
}

// Scrape asks the sidecar for structured recipe data and falls back to
// pulling OpenGraph tags straight off the page when the sidecar is down.
// Best effort: the caller treats an error as "import without details".
func (s *ScraperService) Scrape(link string) (*ScrapedRecipe, error) {
	if s.baseURL != "" {
		scraped, err := s.callSidecar(link)
		if err == nil {
			return scraped, nil
		}
	}
	return s.extractOpenGraph(link)
}

func (s *ScraperService) callSidecar(link string) (*ScrapedRecipe, error) {
	body, _ := json.Marshal(map[string]string{"url": link})

	req, err := http.NewRequest("POST", s.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scraper request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read scraper response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var scraperErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &scraperErr) == nil && scraperErr.Error != "" {
			return nil, fmt.Errorf("scraper error (%d): %s", resp.StatusCode, scraperErr.Error)
		}
		return nil, fmt.Errorf("scraper error (%d)", resp.StatusCode)
	}

	var scraped ScrapedRecipe
	if err := json.Unmarshal(respBytes, &scraped); err != nil {
		return nil, fmt.Errorf("decode scraper response error: %w", err)
	}
	return &scraped, nil
}

func (s *ScraperService) extractOpenGraph(link string) (*ScrapedRecipe, error) {
	resp, err := s.client.Get(link)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	scraped := &ScrapedRecipe{}
	if v, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		scraped.Name = strings.TrimSpace(v)
	}
	if scraped.Name == "" {
		scraped.Name = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if v, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok {
		scraped.ImageURL = strings.TrimSpace(v)
	}
	return scraped, nil
}
