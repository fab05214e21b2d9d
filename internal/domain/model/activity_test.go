package model_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mergington/activities/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestActivityRoster(t *testing.T) {
	Convey("Given an activity with two participants", t, func() {
		a := model.Activity{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		}

		Convey("Then Registered matches roster membership", func() {
			So(a.Registered("michael@mergington.edu"), ShouldBeTrue)
			So(a.Registered("nobody@mergington.edu"), ShouldBeFalse)
		})

		Convey("And SpotsLeft reflects capacity", func() {
			So(a.SpotsLeft(), ShouldEqual, 10)
		})

		Convey("And Clone does not alias the roster", func() {
			c := a.Clone()
			c.Participants[0] = "other@mergington.edu"
			So(a.Participants[0], ShouldEqual, "michael@mergington.edu")
		})
	})
}

func TestActivityValidate(t *testing.T) {
	Convey("Given activity validation", t, func() {
		Convey("Then a well-formed activity passes", func() {
			a := model.Activity{Name: "Math Club", MaxParticipants: 10}
			So(a.Validate(), ShouldBeNil)
		})

		Convey("And an empty name fails", func() {
			a := model.Activity{MaxParticipants: 10}
			So(a.Validate(), ShouldNotBeNil)
		})

		Convey("And a non-positive capacity fails", func() {
			a := model.Activity{Name: "Math Club"}
			So(a.Validate(), ShouldNotBeNil)
		})

		Convey("And duplicate participants fail", func() {
			a := model.Activity{
				Name:            "Math Club",
				MaxParticipants: 10,
				Participants:    []string{"x@mergington.edu", "x@mergington.edu"},
			}
			So(a.Validate(), ShouldNotBeNil)
		})
	})
}

func TestCatalogMarshalJSON(t *testing.T) {
	Convey("Given a catalog with several activities", t, func() {
		catalog := model.Catalog{
			{Name: "Swimming Club", MaxParticipants: 20, Participants: []string{}},
			{Name: "Art Studio", MaxParticipants: 15, Participants: []string{"amy@mergington.edu"}},
			{Name: "Chess Club", MaxParticipants: 12, Participants: []string{}},
		}

		out, err := json.Marshal(catalog)
		So(err, ShouldBeNil)

		Convey("Then it serializes as an object keyed by name", func() {
			var decoded map[string]map[string]any
			So(json.Unmarshal(out, &decoded), ShouldBeNil)
			So(decoded, ShouldContainKey, "Swimming Club")
			So(decoded["Art Studio"]["participants"], ShouldResemble, []any{"amy@mergington.edu"})
			So(decoded["Chess Club"]["max_participants"], ShouldEqual, 12)
		})

		Convey("And insertion order is preserved", func() {
			s := string(out)
			So(strings.Index(s, "Swimming Club"), ShouldBeLessThan, strings.Index(s, "Art Studio"))
			So(strings.Index(s, "Art Studio"), ShouldBeLessThan, strings.Index(s, "Chess Club"))
		})
	})
}
