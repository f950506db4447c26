package auction

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowestBINQueryAndParse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("limit"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "asc", q.Get("sortOrder"))
		assert.Equal(t, "starting_bid", q.Get("sortBy"))
		assert.Equal(t, "MASTER_SKULL_TIER_3", q.Get("id"))
		assert.Equal(t, "true", q.Get("bin"))
		assert.Equal(t, "accessories", q.Get("category"))
		fmt.Fprint(w, `{"matching_query": 12, "auctions": [{"starting_bid": 1250000, "item": {"name": "x"}}]}`)
	}))
	defer srv.Close()

	price, found, err := NewClient(srv.URL).LowestBIN(context.Background(), MasterSkullID(3))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(1_250_000), price)
}

func TestLowestBINNoListings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"matching_query": 0, "auctions": []}`)
	}))
	defer srv.Close()

	_, found, err := NewClient(srv.URL).LowestBIN(context.Background(), "MASTER_SKULL_TIER_7")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLowestBINMalformed(t *testing.T) {
	cases := map[string]string{
		"no matching_query": `{"auctions": []}`,
		"empty auctions":    `{"matching_query": 3, "auctions": []}`,
		"no starting_bid":   `{"matching_query": 3, "auctions": [{}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, body)
			}))
			defer srv.Close()

			_, _, err := NewClient(srv.URL).LowestBIN(context.Background(), "X")
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestLowestBINHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") == "BAD_JSON" {
			fmt.Fprint(w, "<html>")
			return
		}
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, _, err := c.LowestBIN(context.Background(), "X")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 429")

	_, _, err = c.LowestBIN(context.Background(), "BAD_JSON")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal response")
}

func TestLowestBINsFanOut(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		id := r.URL.Query().Get("id")
		if strings.HasSuffix(id, "_7") {
			fmt.Fprint(w, `{"matching_query": 0, "auctions": []}`)
			return
		}
		tier := id[len(id)-1] - '0'
		fmt.Fprintf(w, `{"matching_query": 1, "auctions": [{"starting_bid": %d}]}`, int(tier)*1000)
	}))
	defer srv.Close()

	ids := make([]string, 0, 7)
	for tier := 1; tier <= 7; tier++ {
		ids = append(ids, MasterSkullID(tier))
	}

	prices, err := NewClient(srv.URL).LowestBINs(context.Background(), ids)
	require.NoError(t, err)
	assert.Equal(t, int32(7), calls.Load())
	assert.Len(t, prices, 6)
	assert.Equal(t, int64(3000), prices["MASTER_SKULL_TIER_3"])
	_, ok := prices["MASTER_SKULL_TIER_7"]
	assert.False(t, ok)
}

func TestLowestBINsKeepsPricesOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("id") {
		case "B":
			w.WriteHeader(http.StatusInternalServerError)
		case "D":
			fmt.Fprint(w, `{"auctions": []}`)
		default:
			fmt.Fprint(w, `{"matching_query": 1, "auctions": [{"starting_bid": 5}]}`)
		}
	}))
	defer srv.Close()

	prices, err := NewClient(srv.URL).LowestBINs(context.Background(), []string{"A", "B", "C", "D"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Equal(t, map[string]int64{"A": 5, "C": 5}, prices)
}
