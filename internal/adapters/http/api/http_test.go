package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mergington/activities/internal/adapters/http/api"
	"github.com/mergington/activities/internal/app"
	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

// newTestMux builds a mux with the full API registered against a freshly
// seeded service.
func newTestMux() *http.ServeMux {
	_ = logger.Init()
	svc := app.New()
	if err := svc.Start(context.Background()); err != nil {
		panic(err)
	}
	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(context.Background(), mux)
	return mux
}

func doRequest(mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](w *httptest.ResponseRecorder) T {
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		panic(err)
	}
	return v
}

func TestListActivities(t *testing.T) {
	Convey("Given a registered API", t, func() {
		mux := newTestMux()

		Convey("When listing activities", func() {
			w := doRequest(mux, http.MethodGet, "/activities")

			Convey("Then it returns 200 with a non-empty object", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")

				data := decodeBody[map[string]map[string]any](w)
				So(len(data), ShouldBeGreaterThan, 0)
			})

			Convey("And every entry has the four required fields", func() {
				data := decodeBody[map[string]map[string]any](w)
				for _, details := range data {
					So(details, ShouldContainKey, "description")
					So(details, ShouldContainKey, "schedule")
					So(details, ShouldContainKey, "max_participants")
					So(details, ShouldContainKey, "participants")

					_, isArray := details["participants"].([]any)
					So(isArray, ShouldBeTrue)
				}
			})

			Convey("And Chess Club is present", func() {
				data := decodeBody[map[string]map[string]any](w)
				So(data, ShouldContainKey, "Chess Club")
			})
		})

		Convey("When using a non-GET method", func() {
			w := doRequest(mux, http.MethodPost, "/activities")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestSignup(t *testing.T) {
	Convey("Given a registered API", t, func() {
		mux := newTestMux()

		Convey("When signing up a new email", func() {
			w := doRequest(mux, http.MethodPost, "/activities/Basketball%20Team/signup?email=test@example.com")

			Convey("Then it returns 200 with a message naming the email", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				body := decodeBody[map[string]string](w)
				So(body["message"], ShouldContainSubstring, "test@example.com")
				So(body["message"], ShouldContainSubstring, "Basketball Team")
			})

			Convey("And the participant count grows by one", func() {
				list := doRequest(mux, http.MethodGet, "/activities")
				data := decodeBody[map[string]map[string]any](list)
				participants := data["Basketball Team"]["participants"].([]any)
				So(len(participants), ShouldEqual, 2) // seeded with one participant
				So(participants, ShouldContain, "test@example.com")
			})
		})

		Convey("When signing up the same email twice", func() {
			first := doRequest(mux, http.MethodPost, "/activities/Art%20Studio/signup?email=dup@mergington.edu")
			So(first.Code, ShouldEqual, http.StatusOK)

			second := doRequest(mux, http.MethodPost, "/activities/Art%20Studio/signup?email=dup@mergington.edu")

			Convey("Then the second attempt returns 400 Already signed up", func() {
				So(second.Code, ShouldEqual, http.StatusBadRequest)
				body := decodeBody[map[string]string](second)
				So(body["detail"], ShouldEqual, "Already signed up")
			})
		})

		Convey("When signing up for an unknown activity", func() {
			w := doRequest(mux, http.MethodPost, "/activities/Nonexistent%20Activity/signup?email=test@example.com")

			Convey("Then it returns 404 Activity not found", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				body := decodeBody[map[string]string](w)
				So(body["detail"], ShouldEqual, "Activity not found")
			})
		})

		Convey("When the email parameter is missing", func() {
			w := doRequest(mux, http.MethodPost, "/activities/Chess%20Club/signup")

			Convey("Then it returns 400 Email is required", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				body := decodeBody[map[string]string](w)
				So(body["detail"], ShouldEqual, "Email is required")
			})
		})

		Convey("When the activity name contains an unencoded space", func() {
			req := httptest.NewRequest(http.MethodPost, "/activities/x/signup?email=a@b.c", nil)
			req.URL.Path = "/activities/Chess Club/signup"
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("When using a non-POST method", func() {
			w := doRequest(mux, http.MethodGet, "/activities/Chess%20Club/signup?email=a@b.c")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When the action segment is unknown", func() {
			w := doRequest(mux, http.MethodPost, "/activities/Chess%20Club/enroll?email=a@b.c")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestUnregister(t *testing.T) {
	Convey("Given a registered API", t, func() {
		mux := newTestMux()

		Convey("When unregistering a signed-up email", func() {
			signup := doRequest(mux, http.MethodPost, "/activities/Programming%20Class/signup?email=leaver@mergington.edu")
			So(signup.Code, ShouldEqual, http.StatusOK)

			w := doRequest(mux, http.MethodPost, "/activities/Programming%20Class/unregister?email=leaver@mergington.edu")

			Convey("Then it returns 200 with an Unregistered message", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				body := decodeBody[map[string]string](w)
				So(body["message"], ShouldContainSubstring, "Unregistered")
				So(body["message"], ShouldContainSubstring, "leaver@mergington.edu")
			})

			Convey("And the roster no longer contains the email", func() {
				list := doRequest(mux, http.MethodGet, "/activities")
				data := decodeBody[map[string]map[string]any](list)
				participants := data["Programming Class"]["participants"].([]any)
				So(participants, ShouldNotContain, "leaver@mergington.edu")
			})
		})

		Convey("When unregistering an email never signed up", func() {
			w := doRequest(mux, http.MethodPost, "/activities/Debate%20Team/unregister?email=never@mergington.edu")

			Convey("Then it returns 400 Not signed up", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				body := decodeBody[map[string]string](w)
				So(body["detail"], ShouldEqual, "Not signed up")
			})
		})

		Convey("When unregistering from an unknown activity", func() {
			w := doRequest(mux, http.MethodPost, "/activities/Fake%20Activity/unregister?email=test@example.com")

			Convey("Then it returns 404 Activity not found", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				body := decodeBody[map[string]string](w)
				So(body["detail"], ShouldEqual, "Activity not found")
			})
		})
	})
}

func TestHealthAndStats(t *testing.T) {
	Convey("Given a registered API", t, func() {
		mux := newTestMux()

		Convey("Then the health endpoint reports ok", func() {
			w := doRequest(mux, http.MethodGet, "/healthz")
			So(w.Code, ShouldEqual, http.StatusOK)
			body := decodeBody[map[string]string](w)
			So(body["status"], ShouldEqual, "ok")
		})

		Convey("And the stats endpoint reports catalog numbers", func() {
			w := doRequest(mux, http.MethodGet, "/stats")
			So(w.Code, ShouldEqual, http.StatusOK)
			body := decodeBody[map[string]any](w)
			So(body, ShouldContainKey, "totalActivities")
			So(body, ShouldContainKey, "totalParticipants")
		})

		Convey("And the metrics endpoint serves the exposition format", func() {
			w := doRequest(mux, http.MethodGet, "/metrics")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "mergington_")
		})
	})
}

// failingDeps forces internal errors to exercise the 500 path.
type failingDeps struct{}

func (failingDeps) ListActivities(context.Context) (model.Catalog, error) {
	return nil, errors.New("registry unavailable")
}

func (failingDeps) Signup(context.Context, string, string) (model.Activity, error) {
	return model.Activity{}, errors.New("registry unavailable")
}

func (failingDeps) Unregister(context.Context, string, string) (model.Activity, error) {
	return model.Activity{}, errors.New("registry unavailable")
}

func (failingDeps) GetStats() map[string]any { return nil }

func TestInternalErrors(t *testing.T) {
	Convey("Given an API over a failing dependency", t, func() {
		mux := http.NewServeMux()
		deps := failingDeps{}
		api.NewServer(deps, deps).Register(context.Background(), mux)

		Convey("Then list failures surface as 500", func() {
			w := doRequest(mux, http.MethodGet, "/activities")
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
		})

		Convey("And signup failures surface as 500", func() {
			w := doRequest(mux, http.MethodPost, "/activities/Chess%20Club/signup?email=a@b.c")
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
			body := decodeBody[map[string]string](w)
			So(body["detail"], ShouldEqual, "registry unavailable")
		})
	})
}
