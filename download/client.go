// Package download fetches daily bulletin PDFs from the exchange website.
package download

import (
	"crypto/tls"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
)

// URL patterns observed on the BRVM site, tried in order. The placeholder
// receives the date as YYYYMMDD.
var DefaultURLPatterns = []string{
	"https://www.brvm.org/sites/default/files/boc_%s_2.pdf",
	"https://www.brvm.org/sites/default/files/boc_%s_1.pdf",
}

// A bulletin is a multi-page PDF; responses smaller than this are error
// pages served with status 200.
const minBulletinSize = 5000

type Client struct {
	http     *resty.Client
	patterns []string
	dir      string
}

// NewClient builds a downloader caching PDFs under dir. The exchange site
// serves an incomplete certificate chain, hence the relaxed TLS check.
func NewClient(dir string) *Client {
	http := resty.New().
		SetTimeout(30 * time.Second).
		SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}).
		SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	return &Client{http: http, patterns: DefaultURLPatterns, dir: dir}
}

// SetURLPatterns overrides the candidate URL list (used by tests and for
// mirror sites).
func (c *Client) SetURLPatterns(patterns []string) { c.patterns = patterns }

// Fetch downloads the bulletin for a date and returns the local path. An
// already-downloaded bulletin is reused unless force is set.
func (c *Client) Fetch(date time.Time, force bool) (string, error) {
	dateStr := date.Format("20060102")
	path := filepath.Join(c.dir, fmt.Sprintf("boc_%s.pdf", dateStr))

	if !force {
		if _, err := os.Stat(path); err == nil {
			log.Printf("Bulletin already downloaded: %s", filepath.Base(path))
			return path, nil
		}
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create bulletin directory: %w", err)
	}

	for _, pattern := range c.patterns {
		url := fmt.Sprintf(pattern, dateStr)
		log.Printf("Trying %s", url)
		resp, err := c.http.R().Get(url)
		if err != nil {
			log.Printf("Download error: %v", err)
			continue
		}
		if resp.StatusCode() != 200 || len(resp.Body()) < minBulletinSize {
			log.Printf("Invalid response: status=%d size=%d", resp.StatusCode(), len(resp.Body()))
			continue
		}
		if err := os.WriteFile(path, resp.Body(), 0o644); err != nil {
			return "", fmt.Errorf("failed to write bulletin: %w", err)
		}
		log.Printf("Bulletin downloaded: %s (%d bytes)", filepath.Base(path), len(resp.Body()))
		return path, nil
	}

	return "", fmt.Errorf("no bulletin found for %s", date.Format("2006-01-02"))
}
