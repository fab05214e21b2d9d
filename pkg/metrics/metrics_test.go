package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	Convey("Given a manager on an isolated registry", t, func() {
		reg := prometheus.NewRegistry()
		m := NewManager(WithNamespace("test"), WithRegistry(reg))

		Convey("Then all collectors are registered", func() {
			So(m, ShouldNotBeNil)

			m.signups.Inc()
			m.rejections.WithLabelValues("duplicate").Inc()
			m.rosterSize.WithLabelValues("Chess Club").Set(3)

			families, err := reg.Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)

			names := make(map[string]bool, len(families))
			for _, f := range families {
				names[f.GetName()] = true
			}
			So(names["test_signups_total"], ShouldBeTrue)
			So(names["test_signup_rejections_total"], ShouldBeTrue)
			So(names["test_activity_roster_size"], ShouldBeTrue)
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Then the package-level helpers do not panic", func() {
			So(func() {
				RecordSignup()
				RecordUnregistration()
				RecordRejection("not_found")
				UpdateRosterSize("Chess Club", 2)
				UpdateRosterCapacity("Chess Club", 12)
				RecordHTTPRequest("activities", "GET", "200")
				RecordHTTPRequestDuration("activities", "GET", "200", 1.5)
				UpdateSystemMemoryUsage(1 << 20)
				UpdateSystemGoroutineCount(8)
			}, ShouldNotPanic)
		})

		Convey("And the custom registry gathers them", func() {
			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
