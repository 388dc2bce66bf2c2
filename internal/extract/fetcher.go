// Package extract retrieves policy documents and converts them to plain text.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/Alex-Leontaridis/GovAid-AI/internal/domain"
	"go.uber.org/zap"
)

// browserUserAgent is sent with every fetch. Government sites routinely
// refuse requests from obvious bots.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Fetcher retrieves raw HTML for a URL. No retries: scraping targets are
// heterogeneous and a blind retry only wastes latency, so failures
// propagate immediately.
type Fetcher struct {
	client *http.Client
	logger *zap.Logger
}

// NewFetcher creates a Fetcher with a hard timeout.
func NewFetcher(timeout time.Duration, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger.Named("fetcher"),
	}
}

// FetchURL performs an HTTP GET and returns the response body.
// Failure kinds: KindNotFound for DNS failures and 404s, KindTimeout for
// deadline overruns, KindNetwork for other transport errors, and
// KindHTTPStatus (with the status recorded) for remaining non-2xx codes.
func (f *Fetcher) FetchURL(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", domain.E(domain.KindNetwork, "create_request", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return "", classifyTransportError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", domain.E(domain.KindNotFound, "fetch_url",
			fmt.Errorf("page not found: %s", url))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		perr := domain.E(domain.KindHTTPStatus, "fetch_url",
			fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)))
		perr.Status = resp.StatusCode
		return "", perr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.E(domain.KindNetwork, "read_body", err)
	}

	f.logger.Debug("fetched page",
		zap.String("url", url),
		zap.Int("bytes", len(body)),
		zap.Duration("duration", time.Since(start)),
	)

	return string(body), nil
}

// classifyTransportError maps stdlib transport failures onto the closed
// error set.
func classifyTransportError(url string, err error) error {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return domain.E(domain.KindNotFound, "fetch_url",
			fmt.Errorf("invalid URL or website not found: %s", url))
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.E(domain.KindTimeout, "fetch_url",
			fmt.Errorf("request timeout: website took too long to respond"))
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.E(domain.KindTimeout, "fetch_url",
			fmt.Errorf("request timeout: website took too long to respond"))
	}

	return domain.E(domain.KindNetwork, "fetch_url", err)
}
