package network

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClient(t *testing.T) {
	Convey("Given a server that echoes the user agent", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(r.UserAgent()))
		}))
		defer server.Close()

		Convey("Requests should be tagged with the application name", func() {
			resp, err := Client.Get(server.URL)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, UserAgent())
		})

		Convey("An explicit user agent should be kept", func() {
			req, err := http.NewRequest(http.MethodGet, server.URL, nil)
			So(err, ShouldBeNil)
			req.Header.Set("User-Agent", "probe")

			resp, err := Client.Do(req)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, "probe")
		})
	})
}
