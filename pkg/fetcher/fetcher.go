package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultMaxRedirects = 5
	userAgent           = "ImageAnalyzer/1.0"
)

var ErrEmptyURL = errors.New("image url is empty")

type ItfFetcher interface {
	GetImage(ctx context.Context, url string) ([]byte, error)
}

type fetcher struct {
	maxRedirects int
}

func New() ItfFetcher {
	return &fetcher{maxRedirects: defaultMaxRedirects}
}

// GetImage downloads url and returns the body as raw bytes. Any status outside
// 2xx is an error. A deadline on ctx bounds the request; redirects are only
// followed when ctx has no deadline.
func (f *fetcher) GetImage(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	agent := fiber.Get(url).
		UserAgent(userAgent).
		MaxRedirectsCount(f.maxRedirects)

	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, context.DeadlineExceeded
		}
		agent = agent.Timeout(remaining)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("fetch %s: %w", url, errors.Join(errs...))
	}

	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, code)
	}

	return body, nil
}
