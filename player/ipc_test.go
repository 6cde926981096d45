//go:build !windows

package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeServer answers one command per connection, first broadcasting an unrelated event.
func fakeServer(t *testing.T, reply func(cmd ipcCommand) string) string {
	dir, err := os.MkdirTemp("", "vs")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	path := filepath.Join(dir, "mpv.sock")
	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				line, err := bufio.NewReader(conn).ReadBytes('\n')
				if err != nil {
					return
				}
				var cmd ipcCommand
				if json.Unmarshal(line, &cmd) != nil {
					return
				}
				fmt.Fprintln(conn, `{"event":"property-change","name":"time-pos","data":3}`)
				fmt.Fprintln(conn, reply(cmd))
			}(conn)
		}
	}()

	return path
}

func TestCommand(t *testing.T) {
	Convey("Given an mpv socket", t, func() {
		Convey("Replies should be matched by request id", func() {
			path := fakeServer(t, func(cmd ipcCommand) string {
				return fmt.Sprintf(`{"data":42.5,"error":"success","request_id":%d}`, cmd.RequestID)
			})
			m := &MPV{socketPath: path}

			data, err := m.Command("get_property", "duration")
			So(err, ShouldBeNil)
			So(data, ShouldEqual, 42.5)
		})

		Convey("mpv errors should be returned without retrying", func() {
			var attempts atomic.Int32
			path := fakeServer(t, func(cmd ipcCommand) string {
				attempts.Add(1)
				return fmt.Sprintf(`{"error":"property unavailable","request_id":%d}`, cmd.RequestID)
			})
			m := &MPV{socketPath: path}

			_, err := m.Command("get_property", "duration")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "property unavailable")
			So(attempts.Load(), ShouldEqual, 1)
		})

		Convey("A missing socket should fail after retries", func() {
			m := &MPV{socketPath: filepath.Join(os.TempDir(), "vidstrip-missing.sock")}
			_, err := m.Command("get_property", "pause")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "3 attempts")
		})
	})
}
