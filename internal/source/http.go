package source

import (
	"fmt"
	"io"
	"net/http"
)

func (l *Loader) loadHTTP(url string) ([]string, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	lines := SplitLines(string(body))
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: %w", url, ErrNoLines)
	}
	return lines, nil
}
