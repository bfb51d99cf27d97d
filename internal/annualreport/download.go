package annualreport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/EigenChen/akshare-financial-analysis/internal/eastmoney"
	"github.com/EigenChen/akshare-financial-analysis/internal/statement"
)

const (
	cninfoSearchURL   = "http://www.cninfo.com.cn/new/information/topSearch/query"
	cninfoDownloadURL = "http://www.cninfo.com.cn/new/disclosure/detail/download"
	cninfoStaticURL   = "http://static.cninfo.com.cn/finalpage"
	hkexSearchURL     = "https://www1.hkexnews.hk/search/titlesearch.xhtml"
	hkexBaseURL       = "https://www1.hkexnews.hk"

	downloaderUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// anything smaller is an error page, not a filing
	minPDFSize = 50_000
)

// Announcement is one disclosure hit from a filing search.
type Announcement struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Time  string `json:"time"`
	URL   string `json:"url"`
}

// Downloader fetches annual report PDFs from cninfo (A-share) and
// HKEX news (Hong Kong) into a local directory.
type Downloader struct {
	client    *http.Client
	dir       string
	cninfoURL string
	hkexURL   string
}

// NewDownloader creates a downloader saving PDFs under dir.
func NewDownloader(dir string) *Downloader {
	return &Downloader{
		client: &http.Client{
			// filings run to hundreds of MB on a slow CDN
			Timeout: 5 * time.Minute,
		},
		dir:       dir,
		cninfoURL: cninfoSearchURL,
		hkexURL:   hkexSearchURL,
	}
}

// DownloadReport fetches the annual report PDF for the given fiscal year and
// returns the local file path. The market is detected from the symbol.
func (d *Downloader) DownloadReport(ctx context.Context, symbol string, year int) (string, error) {
	market, err := eastmoney.DetectMarket(symbol)
	if err != nil {
		return "", err
	}
	if market == statement.MarketHK {
		return d.downloadHK(ctx, symbol, year)
	}
	return d.downloadAShare(ctx, symbol, year)
}

func (d *Downloader) downloadAShare(ctx context.Context, symbol string, year int) (string, error) {
	announcements, err := d.SearchCNInfo(ctx, symbol, year)
	if err != nil {
		return "", err
	}
	if len(announcements) == 0 {
		return "", fmt.Errorf("no annual report announcement found for %s year %d", symbol, year)
	}

	path := filepath.Join(d.dir, fmt.Sprintf("%s_%d年年度报告.pdf", symbol, year))
	var lastErr error
	for _, ann := range announcements {
		for _, u := range cninfoDownloadURLs(ann) {
			if err := d.downloadPDF(ctx, u, path); err != nil {
				lastErr = err
				continue
			}
			return path, nil
		}
	}
	return "", fmt.Errorf("all download attempts failed for %s year %d: %w", symbol, year, lastErr)
}

func (d *Downloader) downloadHK(ctx context.Context, symbol string, year int) (string, error) {
	links, err := d.SearchHKEX(ctx, symbol, year)
	if err != nil {
		return "", err
	}
	if len(links) == 0 {
		return "", fmt.Errorf("no annual report PDF found for %s year %d", symbol, year)
	}

	code := eastmoney.NormalizeHKCode(symbol)
	path := filepath.Join(d.dir, fmt.Sprintf("%s_%d年年度报告.pdf", code, year))
	var lastErr error
	for _, link := range links {
		if err := d.downloadPDF(ctx, link, path); err != nil {
			lastErr = err
			continue
		}
		return path, nil
	}
	return "", fmt.Errorf("all download attempts failed for %s year %d: %w", symbol, year, lastErr)
}

// SearchCNInfo queries the cninfo top search for a symbol's annual report
// announcements in the publication year following the fiscal year.
func (d *Downloader) SearchCNInfo(ctx context.Context, symbol string, year int) ([]Announcement, error) {
	params := url.Values{}
	params.Set("keyWord", symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.cninfoURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", downloaderUserAgent)
	req.Header.Set("Referer", "http://www.cninfo.com.cn/")
	req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cninfo search request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cninfo search returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// annual reports publish in the year after the fiscal year
	pubYear := fmt.Sprintf("%d", year+1)

	var out []Announcement
	for _, rec := range decodeCNInfoRecords(body) {
		if !strings.Contains(rec.Title, "年度报告") || strings.Contains(rec.Title, "摘要") {
			continue
		}
		if !strings.Contains(rec.Time, pubYear) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// cninfo response shapes vary; records may sit under several keys or be the
// top-level array.
func decodeCNInfoRecords(body []byte) []Announcement {
	var raw map[string]json.RawMessage
	rawRecords := json.RawMessage(body)
	if err := json.Unmarshal(body, &raw); err == nil {
		for _, key := range []string{"records", "data", "list", "announcements"} {
			if v, ok := raw[key]; ok {
				rawRecords = v
				break
			}
		}
	}

	var records []struct {
		AnnouncementID    json.Number `json:"announcementId"`
		AnnouncementTitle string      `json:"announcementTitle"`
		AnnouncementTime  string      `json:"announcementTime"`
	}
	if err := json.Unmarshal(rawRecords, &records); err != nil {
		return nil
	}

	out := make([]Announcement, 0, len(records))
	for _, rec := range records {
		if rec.AnnouncementID.String() == "" {
			continue
		}
		out = append(out, Announcement{
			ID:    rec.AnnouncementID.String(),
			Title: rec.AnnouncementTitle,
			Time:  rec.AnnouncementTime,
		})
	}
	return out
}

// cninfoDownloadURLs lists candidate PDF URLs for an announcement, most
// reliable first.
func cninfoDownloadURLs(ann Announcement) []string {
	urls := []string{
		fmt.Sprintf("%s?announcementId=%s", cninfoDownloadURL, ann.ID),
	}
	if ann.Time != "" {
		date := strings.ReplaceAll(ann.Time[:min(10, len(ann.Time))], "-", "")
		urls = append(urls, fmt.Sprintf("%s/%s/%s.PDF", cninfoStaticURL, date, ann.ID))
	}
	return urls
}

// SearchHKEX searches HKEX news for annual report PDFs published the year
// after the fiscal year and returns absolute PDF links.
func (d *Downloader) SearchHKEX(ctx context.Context, symbol string, year int) ([]string, error) {
	code := eastmoney.NormalizeHKCode(symbol)

	params := url.Values{}
	params.Set("lang", "ZH")
	params.Set("category", "0")
	params.Set("market", "SEHK")
	params.Set("searchType", "0")
	params.Set("documentType", "9")
	params.Set("t1code", "40000")
	params.Set("stockCode", code)
	params.Set("from", fmt.Sprintf("%d-01-01", year+1))
	params.Set("to", fmt.Sprintf("%d-12-31", year+1))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.hkexURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", downloaderUserAgent)
	req.Header.Set("Referer", "https://www.hkexnews.hk/")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hkex search request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hkex search returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hkex search result: %w", err)
	}

	var links []string
	seen := make(map[string]bool)
	doc.Find(`a[href*=".pdf"]`).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		if !strings.HasPrefix(href, "http") {
			if !strings.HasPrefix(href, "/") {
				href = "/" + href
			}
			href = hkexBaseURL + href
		}
		if !seen[href] {
			seen[href] = true
			links = append(links, href)
		}
	})
	return links, nil
}

// downloadPDF fetches one URL and saves it when the response looks like a
// real PDF.
func (d *Downloader) downloadPDF(ctx context.Context, rawURL, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", downloaderUserAgent)
	req.Header.Set("Accept", "application/pdf,*/*")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("download request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(strings.ToLower(contentType), "pdf") && resp.ContentLength >= 0 && resp.ContentLength < minPDFSize {
		return fmt.Errorf("response is not a PDF (content type %q, %d bytes)", contentType, resp.ContentLength)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	written, err := io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to save PDF: %w", err)
	}
	if written < minPDFSize {
		os.Remove(path)
		return fmt.Errorf("downloaded file too small (%d bytes), not a valid PDF", written)
	}
	return nil
}
