package web_fetch

import (
	"context"
	"errors"
	"time"

	"github.com/drbombe/researchpal/tools/web_fetch/chromedp"
	"github.com/drbombe/researchpal/tools/web_fetch/models"
)

const (
	DefaultTimeout  = 15 * time.Second
	MaxCharsDefault = 20000
)

// WebFetcher fetches one URL fresh (no caching) and returns extracted text.
type WebFetcher interface {
	Exec(ctx context.Context, url string) (models.Result, error)
}

type FetcherType string

const (
	ChromedpFetcherType FetcherType = "chromedp"
)

var ErrUnsupportedFetcher = errors.New("unsupported fetcher type")

func NewWebFetcher(fetcherType FetcherType, timeout time.Duration, maxChars int, minSectionWords int) (WebFetcher, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxChars <= 0 {
		maxChars = MaxCharsDefault
	}

	switch fetcherType {
	case ChromedpFetcherType:
		return &chromedp.Fetch{Timeout: timeout, MaxChars: maxChars, MinSectionWords: minSectionWords}, nil
	default:
		return nil, ErrUnsupportedFetcher
	}
}
