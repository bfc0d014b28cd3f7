package steem

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{NodeURL: srv.URL, Timeout: 5 * time.Second, RetryMax: 1}, testLogger())
}

func TestFetch_TransformsPost(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "condenser_api.get_content", req.Method)
		assert.Equal(t, []string{"someauthor", "some-permlink"}, req.Params)

		_, _ = w.Write([]byte(`{
			"jsonrpc": "2.0",
			"id": 1,
			"result": {
				"id": 41792233,
				"author": "someauthor",
				"permlink": "some-permlink",
				"created": "2018-05-03T16:10:09",
				"body": "the post body",
				"json_metadata": "{\"tags\":[\"utopian-io\",\"development\"]}",
				"active_votes": [
					{"voter": "somebody", "weight": 10, "percent": 100, "rshares": 1234, "time": "2018-05-03T17:00:00"},
					{"voter": "utopian-io", "weight": 15000, "percent": 2500, "rshares": "9876543210", "time": "2018-05-04T09:30:00"}
				]
			}
		}`))
	})

	content, err := client.Fetch(context.Background(), "someauthor", "some-permlink")
	require.NoError(t, err)

	assert.Equal(t, "2018-05-03T16:10:09", content.Created)
	assert.Equal(t, "the post body", content.Body)
	assert.Equal(t, []string{"utopian-io", "development"}, content.Tags)
	require.Len(t, content.Votes, 2)
	assert.Equal(t, int64(1234), content.Votes[0].Rshares)
	// quoted rshares decode too
	assert.Equal(t, int64(9876543210), content.Votes[1].Rshares)

	vote := content.VoteBy("utopian-io")
	require.NotNil(t, vote)
	assert.Equal(t, int64(15000), vote.Weight)

	assert.Nil(t, content.VoteBy("nobody"))
}

func TestFetch_UnknownPostIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// get_content answers an all-zero post for unknown keys
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"id":0,"author":"","permlink":""}}`))
	})

	_, err := client.Fetch(context.Background(), "ghost", "missing")
	require.ErrorIs(t, err, ErrContentNotFound)
}

func TestFetch_NodeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"server overloaded"}}`))
	})

	_, err := client.Fetch(context.Background(), "someauthor", "some-permlink")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server overloaded")
}

func TestFetch_BadMetadataToleratedAsNoTags(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"jsonrpc": "2.0",
			"id": 1,
			"result": {
				"id": 7,
				"author": "someauthor",
				"permlink": "some-permlink",
				"created": "2018-05-03T16:10:09",
				"body": "b",
				"json_metadata": "not json",
				"active_votes": []
			}
		}`))
	})

	content, err := client.Fetch(context.Background(), "someauthor", "some-permlink")
	require.NoError(t, err)
	assert.Empty(t, content.Tags)
}
