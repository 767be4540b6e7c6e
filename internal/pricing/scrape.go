package pricing

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const scrapeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Grocery items outside this band are treated as noise when scanning a
// search results page.
const (
	minPlausiblePrice = 0.50
	maxPlausiblePrice = 50.00
)

var (
	pricePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\$(\d+\.\d{2})`),
		regexp.MustCompile(`"price":"?(\d+\.\d{2})"?`),
		regexp.MustCompile(`"salePrice":"?(\d+\.\d{2})"?`),
		regexp.MustCompile(`data-price="(\d+\.\d{2})"`),
	}
	productNamePattern = regexp.MustCompile(`"(?:name|productName)":"([^"]+)"`)
)

// Scraper extracts grocery prices from retailer search pages.
type Scraper struct {
	client *http.Client
}

func NewScraper() *Scraper {
	return &Scraper{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// ScrapedProduct is a single price found on a retailer's search page.
type ScrapedProduct struct {
	Name  string
	Price float64
	Store string
}

func (s *Scraper) fetchPage(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", scrapeUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// extractPrice scans a search results page for the first plausible grocery
// price. Script and style noise is stripped first so embedded JSON blobs do
// not drown out visible prices, then the raw page is scanned as a fallback.
func extractPrice(html string) (float64, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		doc.Find("script, style, nav, footer, iframe").Each(func(i int, sel *goquery.Selection) {
			sel.Remove()
		})
		if price, ok := scanForPrice(doc.Text()); ok {
			return price, true
		}
	}
	return scanForPrice(html)
}

func scanForPrice(text string) (float64, bool) {
	for _, pattern := range pricePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			price, err := strconv.ParseFloat(match[1], 64)
			if err != nil {
				continue
			}
			if price >= minPlausiblePrice && price <= maxPlausiblePrice {
				return price, true
			}
		}
	}
	return 0, false
}

func extractProductName(html, fallback string) string {
	if match := productNamePattern.FindStringSubmatch(html); match != nil {
		return strings.TrimSpace(match[1])
	}
	return fallback
}

// SearchStore looks up a product on one chain's search page and returns the
// first plausible hit, or nil when the page yields no usable price.
func (s *Scraper) SearchStore(ctx context.Context, chain StoreChain, searchTerm string) (*ScrapedProduct, error) {
	pageURL := fmt.Sprintf("%s?q=%s", chain.SearchURL, url.QueryEscape(searchTerm))

	html, err := s.fetchPage(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("search at %s failed: %w", chain.Name, err)
	}

	price, ok := extractPrice(html)
	if !ok {
		return nil, nil
	}

	return &ScrapedProduct{
		Name:  extractProductName(html, searchTerm),
		Price: price,
		Store: chain.Name,
	}, nil
}

// SearchRetailers tries the national retailers in order (Walmart first,
// then Target) and returns the first usable price.
func (s *Scraper) SearchRetailers(ctx context.Context, searchTerm string) (*ScrapedProduct, error) {
	retailers := []StoreChain{
		{ID: "walmart", Name: "Walmart", SearchURL: "https://www.walmart.com/search"},
		{ID: "target", Name: "Target", SearchURL: "https://www.target.com/s"},
	}

	var lastErr error
	for _, retailer := range retailers {
		product, err := s.SearchStore(ctx, retailer, searchTerm)
		if err != nil {
			lastErr = err
			continue
		}
		if product != nil {
			return product, nil
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, nil
}
