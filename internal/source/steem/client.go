// Package steem resolves post metadata and votes through the condenser API of
// a Steem-compatible node.
package steem

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"utopian_syncer/internal/domain"
)

// ErrContentNotFound is returned when no post exists for the requested
// (author, permlink) pair.
var ErrContentNotFound = errors.New("content not found")

type Config struct {
	NodeURL  string
	Timeout  time.Duration
	RetryMax int
}

type Client struct {
	httpClient *retryablehttp.Client
	nodeURL    string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.Logger = nil

	return &Client{
		httpClient: rc,
		nodeURL:    cfg.NodeURL,
		logger:     logger.With("component", "steem"),
	}
}

type rpcRequest struct {
	JSONRPC string   `json:"jsonrpc"`
	Method  string   `json:"method"`
	Params  []string `json:"params"`
	ID      int      `json:"id"`
}

type rpcResponse struct {
	Result *postResult `json:"result"`
	Error  *rpcError   `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type postResult struct {
	ID           int64        `json:"id"`
	Author       string       `json:"author"`
	Permlink     string       `json:"permlink"`
	Created      string       `json:"created"`
	Body         string       `json:"body"`
	JSONMetadata string       `json:"json_metadata"`
	ActiveVotes  []activeVote `json:"active_votes"`
}

type activeVote struct {
	Voter   string          `json:"voter"`
	Weight  int64           `json:"weight"`
	Percent int             `json:"percent"`
	Rshares json.RawMessage `json:"rshares"` // number or quoted string, node-dependent
	Time    string          `json:"time"`
}

// Fetch returns the content of @author/permlink, or ErrContentNotFound when
// the node knows no such post.
func (c *Client) Fetch(ctx context.Context, author, permlink string) (*domain.PostContent, error) {
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  "condenser_api.get_content",
		Params:  []string{author, permlink},
		ID:      1,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.nodeURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if rpcResp.Error != nil {
		return nil, fmt.Errorf("node error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}
	// get_content answers an all-zero post instead of an error for unknown keys.
	if rpcResp.Result == nil || rpcResp.Result.ID == 0 || rpcResp.Result.Author == "" {
		return nil, fmt.Errorf("@%s/%s: %w", author, permlink, ErrContentNotFound)
	}

	return c.transform(rpcResp.Result), nil
}

func (c *Client) transform(post *postResult) *domain.PostContent {
	content := &domain.PostContent{
		Created: post.Created,
		Body:    post.Body,
		Tags:    parseTags(post.JSONMetadata),
	}
	for _, v := range post.ActiveVotes {
		content.Votes = append(content.Votes, domain.Vote{
			Voter:   v.Voter,
			Weight:  v.Weight,
			Percent: v.Percent,
			Rshares: rawInt64(v.Rshares),
			Time:    v.Time,
		})
	}
	return content
}

// parseTags extracts the tag list from the post's json_metadata string.
// Malformed metadata is tolerated as an empty list.
func parseTags(metadata string) []string {
	if metadata == "" {
		return nil
	}
	var meta struct {
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal([]byte(metadata), &meta); err != nil {
		return nil
	}
	return meta.Tags
}

func rawInt64(raw json.RawMessage) int64 {
	s := strings.Trim(string(raw), `"`)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
