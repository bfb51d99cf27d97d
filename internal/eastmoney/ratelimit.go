package eastmoney

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// RLHTTPClient is a rate limited HTTP client. Eastmoney's datacenter API
// throttles aggressive callers, so every request waits on the limiter first.
type RLHTTPClient struct {
	client      *http.Client
	Ratelimiter *rate.Limiter
}

// Do waits for limiter clearance then performs the request. The request's
// own context bounds the wait.
func (c *RLHTTPClient) Do(req *http.Request) (*http.Response, error) {
	if err := c.Ratelimiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return c.client.Do(req)
}

// NewRLClient builds a client allowing rps requests per second with a burst
// of one.
func NewRLClient(rps float64, timeout time.Duration) *RLHTTPClient {
	return &RLHTTPClient{
		client:      &http.Client{Timeout: timeout},
		Ratelimiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}
