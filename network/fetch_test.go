package network

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFetcher(t *testing.T) {
	Convey("Given a fetcher pointed at a test server", t, func() {
		var gotAgent string
		mux := http.NewServeMux()
		mux.HandleFunc("/page", func(w http.ResponseWriter, r *http.Request) {
			gotAgent = r.Header.Get("User-Agent")
			fmt.Fprint(w, `<html><head><title>ok</title></head></html>`)
		})
		mux.HandleFunc("/catalog", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"content":[{"id":1}],"nextPage":-1}`)
		})
		mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"content":`)
		})
		mux.HandleFunc("/missing", http.NotFound)

		server := httptest.NewServer(mux)
		defer server.Close()

		fetcher := NewFetcher(NewClient(5*time.Second, false), "catchup-test/1.0")
		ctx := context.Background()

		Convey("FetchText returns the body and sends the user agent", func() {
			body, err := fetcher.FetchText(ctx, server.URL+"/page", "test")
			So(err, ShouldBeNil)
			So(body, ShouldContainSubstring, "<title>ok</title>")
			So(gotAgent, ShouldEqual, "catchup-test/1.0")
		})

		Convey("FetchJSON decodes into the target", func() {
			var page struct {
				Content  []map[string]any `json:"content"`
				NextPage int              `json:"nextPage"`
			}
			So(fetcher.FetchJSON(ctx, server.URL+"/catalog", "test", &page), ShouldBeNil)
			So(page.Content, ShouldHaveLength, 1)
			So(page.NextPage, ShouldEqual, -1)
		})

		Convey("A non-2xx status is a FetchError carrying the status", func() {
			_, err := fetcher.FetchText(ctx, server.URL+"/missing", "test")
			var fetchErr *FetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
			So(fetchErr.StatusCode, ShouldEqual, http.StatusNotFound)
			So(err.Error(), ShouldContainSubstring, "404")
		})

		Convey("Malformed JSON is a FetchError", func() {
			var v map[string]any
			err := fetcher.FetchJSON(ctx, server.URL+"/broken", "test", &v)
			var fetchErr *FetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
			So(fetchErr.Err, ShouldNotBeNil)
		})

		Convey("A cancelled context aborts the request", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := fetcher.FetchText(cancelled, server.URL+"/page", "test")
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}

func TestFingerprintTransport(t *testing.T) {
	Convey("Plain HTTP requests bypass the fingerprint dialer", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "plain")
		}))
		defer server.Close()

		fetcher := NewFetcher(NewClient(5*time.Second, true), "catchup-test/1.0")
		body, err := fetcher.FetchText(context.Background(), server.URL, "test")
		So(err, ShouldBeNil)
		So(body, ShouldEqual, "plain")
	})
}
