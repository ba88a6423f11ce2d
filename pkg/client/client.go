package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

const (
	// NodeTokenHeader carries the algod API token.
	NodeTokenHeader = "X-Algo-API-Token" // #nosec: it's a header name
	// IndexerTokenHeader carries the indexer API token.
	IndexerTokenHeader = "X-Indexer-API-Token" // #nosec: it's a header name

	maxErrorBodySize = 4 * 1024
)

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Options struct {
	BaseUrl      string
	Client       Doer
	ApiKey       string
	ApiKeyHeader string
}

type Response struct {
	*http.Response
}

func applyOptions(defaults Options, options ...Options) (Options, error) {
	if len(options) > 1 {
		return Options{}, errors.New("too many options provided. Expects no or just one item")
	}
	opts := defaults
	if len(options) == 1 {
		option := options[0]
		if option.BaseUrl != "" {
			opts.BaseUrl = option.BaseUrl
		}
		if option.Client != nil {
			opts.Client = option.Client
		}
		if option.ApiKey != "" {
			opts.ApiKey = option.ApiKey
		}
		if option.ApiKeyHeader != "" {
			opts.ApiKeyHeader = option.ApiKeyHeader
		}
	}
	if _, err := url.Parse(opts.BaseUrl); err != nil {
		return Options{}, errors.Wrapf(err, "invalid base url %q", opts.BaseUrl)
	}
	return opts, nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func newResponse(response *http.Response) *Response {
	return &Response{
		Response: response,
	}
}

func newRequest(ctx context.Context, options Options, method, path string, body io.Reader) (*http.Request, error) {
	u, err := joinUrl(options.BaseUrl, path)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	if options.ApiKey != "" {
		req.Header.Set(options.ApiKeyHeader, options.ApiKey)
	}
	return req, nil
}

func doHTTP(ctx context.Context, options Options, req *http.Request, v any) (*Response, error) {
	req = req.WithContext(ctx)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := options.Client.Do(req)
	if err != nil {
		return nil, newTransportError(err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close() // No error handling intentionally
	}(resp.Body)

	response := newResponse(resp)

	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBodySize))
		return response, newStatusError(response.StatusCode, string(body))
	}

	if v != nil {
		if err = json.NewDecoder(resp.Body).Decode(v); err != nil {
			return response, newParseError(err)
		}
	}

	return response, nil
}

func joinUrl(baseRaw string, pathRaw string) (*url.URL, error) {
	base, err := url.Parse(baseRaw)
	if err != nil {
		return nil, err
	}

	rel, err := url.Parse(pathRaw)
	if err != nil {
		return nil, err
	}
	if rel.IsAbs() {
		return nil, errors.New("path must be relative URL")
	}
	res := base.JoinPath(rel.EscapedPath())

	q := res.Query()
	for k, vals := range rel.Query() {
		for _, v := range vals {
			q.Add(k, v)
		}
	}
	res.RawQuery = q.Encode()

	return res, nil
}
