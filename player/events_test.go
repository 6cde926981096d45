package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestProcessEvent(t *testing.T) {
	Convey("Given a listener with a recording callback", t, func() {
		type call struct {
			name string
			data any
		}
		var calls []call
		el := NewEventListener("", func(name string, data any) {
			calls = append(calls, call{name, data})
		})

		Convey("Property changes should forward name and value", func() {
			el.processEvent([]byte(`{"event":"property-change","id":1,"name":"time-pos","data":12.5}`))
			So(calls, ShouldHaveLength, 1)
			So(calls[0].name, ShouldEqual, "time-pos")
			So(calls[0].data, ShouldEqual, 12.5)
		})

		Convey("Other events should forward the event name", func() {
			el.processEvent([]byte(`{"event":"file-loaded"}`))
			So(calls, ShouldHaveLength, 1)
			So(calls[0].name, ShouldEqual, "file-loaded")
		})

		Convey("Command replies and garbage should be ignored", func() {
			el.processEvent([]byte(`{"data":null,"error":"success","request_id":0}`))
			el.processEvent([]byte(`not json`))
			el.processEvent([]byte(`{"event":"property-change","data":1}`))
			So(calls, ShouldBeEmpty)
		})
	})

	Convey("Stop without Start should return immediately", t, func() {
		NewEventListener("", nil).Stop()
	})
}
