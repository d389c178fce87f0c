package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/harf/internal/adapters/repository"
	service "github.com/okian/harf/internal/app"
	"github.com/okian/harf/internal/domain/model"
	"github.com/okian/harf/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

// mockDeps is a hand-rolled Dependencies implementation for handler tests.
type mockDeps struct {
	attemptResult types.AttemptResult
	attemptErr    error

	snapshot    types.ActivitySnapshot
	activityErr error

	rows []types.LeaderboardRow

	words     []model.CVCWord
	sentences []model.CVCSentence
	stories   []model.CVCStory

	certificate    types.CertificateStatus
	certificateErr error
}

func (m *mockDeps) RecordLetterAttempt(ctx context.Context, studentName, letter string, score int) (types.AttemptResult, error) {
	return m.attemptResult, m.attemptErr
}

func (m *mockDeps) RecordActivity(ctx context.Context, studentName string, kind model.ActivityKind, points int, readingTime *float64) (types.ActivitySnapshot, error) {
	return m.snapshot, m.activityErr
}

func (m *mockDeps) Leaderboard(ctx context.Context, limit int) ([]types.LeaderboardRow, error) {
	return m.rows, nil
}

func (m *mockDeps) Words(ctx context.Context) ([]model.CVCWord, error)         { return m.words, nil }
func (m *mockDeps) Sentences(ctx context.Context) ([]model.CVCSentence, error) { return m.sentences, nil }
func (m *mockDeps) Stories(ctx context.Context) ([]model.CVCStory, error)      { return m.stories, nil }

func (m *mockDeps) Certificate(ctx context.Context, studentName string) (types.CertificateStatus, error) {
	return m.certificate, m.certificateErr
}

type mockStats struct{}

func (mockStats) GetStats() map[string]interface{} {
	return map[string]interface{}{"started": true}
}

func newTestMux(deps *mockDeps) *http.ServeMux {
	mux := http.NewServeMux()
	NewServer(deps, mockStats{}).Register(context.Background(), mux)
	return mux
}

func TestHandleSaveProgress(t *testing.T) {
	Convey("Given the save-progress endpoint", t, func() {
		deps := &mockDeps{attemptResult: types.AttemptResult{Passed: true, Score: 15, Created: true}}
		mux := newTestMux(deps)

		Convey("A valid submission returns the attempt outcome", func() {
			rec := httptest.NewRecorder()
			body := `{"student":"Lina","letter":"A","score":15}`
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/save-progress", strings.NewReader(body)))

			So(rec.Code, ShouldEqual, http.StatusOK)
			var resp progressResponse
			So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Status, ShouldEqual, "ok")
			So(resp.Passed, ShouldBeTrue)
			So(resp.Score, ShouldEqual, 15)
			So(resp.Created, ShouldBeTrue)
		})

		Convey("A gate rejection names the missing prerequisite", func() {
			deps.attemptErr = &repository.PrerequisiteError{RequiredLetter: "B"}
			rec := httptest.NewRecorder()
			body := `{"student":"Lina","letter":"C","score":15}`
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/save-progress", strings.NewReader(body)))

			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			var resp errorResponse
			So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Error, ShouldEqual, "previous_letter_not_passed")
			So(resp.RequiredLetter, ShouldEqual, "B")
			So(resp.Message, ShouldContainSubstring, "letter B")
		})

		Convey("Invalid input from the service maps to 400", func() {
			deps.attemptErr = service.ErrInvalidArgument
			rec := httptest.NewRecorder()
			body := `{"student":"Lina","letter":"AB","score":15}`
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/save-progress", strings.NewReader(body)))
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("A missing score field is rejected before the service", func() {
			rec := httptest.NewRecorder()
			body := `{"student":"Lina","letter":"A"}`
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/save-progress", strings.NewReader(body)))
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("Malformed JSON is rejected", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/save-progress", strings.NewReader("{not json")))
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("GET is not routed", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/save-progress", nil))
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestHandleSaveActivity(t *testing.T) {
	Convey("Given the save-cvc-progress endpoint", t, func() {
		deps := &mockDeps{snapshot: types.ActivitySnapshot{TotalScore: 40, WordsCompleted: 1, Created: true}}
		mux := newTestMux(deps)

		Convey("A valid submission returns the running totals", func() {
			rec := httptest.NewRecorder()
			body := `{"student":"Zain","type":"word","points":40}`
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/save-cvc-progress", strings.NewReader(body)))

			So(rec.Code, ShouldEqual, http.StatusOK)
			var resp activityResponse
			So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Status, ShouldEqual, "ok")
			So(resp.TotalScore, ShouldEqual, 40)
			So(resp.WordsCompleted, ShouldEqual, 1)
		})

		Convey("An unknown activity type maps to 400", func() {
			deps.activityErr = service.ErrInvalidArgument
			rec := httptest.NewRecorder()
			body := `{"student":"Zain","type":"poem","points":40}`
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/save-cvc-progress", strings.NewReader(body)))
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestHandleGetLeaderboard(t *testing.T) {
	Convey("Given the leaderboard endpoint", t, func() {
		deps := &mockDeps{rows: []types.LeaderboardRow{
			{Rank: 1, StudentName: "Rim", Total: 19, PassedLetters: 1},
			{Rank: 2, StudentName: "Aya", Total: 15, PassedLetters: 1},
		}}
		mux := newTestMux(deps)

		Convey("Rows come back ranked with a count", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			var resp leaderboardResponse
			So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Count, ShouldEqual, 2)
			So(resp.Rows[0].StudentName, ShouldEqual, "Rim")
		})

		Convey("A non-numeric limit is rejected", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaderboard?limit=abc", nil))
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("A zero limit is rejected", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaderboard?limit=0", nil))
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestHandleGetCatalogs(t *testing.T) {
	Convey("Given the catalog endpoints", t, func() {
		deps := &mockDeps{
			words:     []model.CVCWord{{Word: "CAT", Meaning: "قطة"}},
			sentences: []model.CVCSentence{{Sentence: "The cat sat on the mat."}},
			stories:   []model.CVCStory{{Title: "The Fat Cat"}},
		}
		mux := newTestMux(deps)

		Convey("Words come back under the words key", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cvc-words", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, `"words"`)
			So(rec.Body.String(), ShouldContainSubstring, `"arabic_meaning"`)
			So(rec.Body.String(), ShouldContainSubstring, `"count":1`)
		})

		Convey("Sentences come back under the sentences key", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cvc-sentences", nil))
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, `"sentences"`)
		})

		Convey("Stories come back under the stories key", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cvc-stories", nil))
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, `"stories"`)
		})
	})
}

func TestHandleGetCertificate(t *testing.T) {
	Convey("Given the certificate endpoint", t, func() {
		deps := &mockDeps{certificate: types.CertificateStatus{
			StudentName: "Omar", Eligible: true, PassedLetters: 26, Required: 26, TotalScore: 480,
		}}
		mux := newTestMux(deps)

		Convey("An eligible student gets their status", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/certificate/Omar", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			var resp types.CertificateStatus
			So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Eligible, ShouldBeTrue)
			So(resp.PassedLetters, ShouldEqual, 26)
		})

		Convey("An unknown student maps to 404", func() {
			deps.certificateErr = repository.ErrNotFound
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/certificate/ghost", nil))
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("A missing name is rejected", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/certificate/", nil))
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("A storage failure maps to a generic internal error body", func() {
			deps.certificateErr = errors.New("disk on fire")
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/certificate/Omar", nil))

			So(rec.Code, ShouldEqual, http.StatusInternalServerError)
			var resp errorResponse
			So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Error, ShouldEqual, "internal_error")
			So(resp.Message, ShouldEqual, "internal server error")
		})
	})
}

func TestHandleSpeechStubs(t *testing.T) {
	Convey("Given the speech endpoints", t, func() {
		mux := newTestMux(&mockDeps{})

		Convey("Speech check echoes the letter with mock accuracy", func() {
			rec := httptest.NewRecorder()
			body := `{"letter":"b"}`
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/speech-check", strings.NewReader(body)))

			So(rec.Code, ShouldEqual, http.StatusOK)
			var resp speechCheckResponse
			So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Recognized, ShouldEqual, "B")
			So(resp.Accuracy, ShouldEqual, 100)
		})

		Convey("A missing letter is rejected", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/speech-check", strings.NewReader(`{}`)))
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("Pronunciation check uppercases the word", func() {
			rec := httptest.NewRecorder()
			body := `{"word":"cat"}`
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/check-pronunciation", strings.NewReader(body)))

			So(rec.Code, ShouldEqual, http.StatusOK)
			var resp pronunciationResponse
			So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Word, ShouldEqual, "CAT")
			So(resp.Accuracy, ShouldEqual, 85)
		})
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	Convey("Given the request id middleware", t, func() {
		mux := newTestMux(&mockDeps{})

		Convey("A response carries a generated request id", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))
			So(rec.Header().Get(RequestIDHeader), ShouldNotBeEmpty)
		})

		Convey("A caller-supplied request id is preserved", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			req.Header.Set(RequestIDHeader, "abc-123")
			mux.ServeHTTP(rec, req)
			So(rec.Header().Get(RequestIDHeader), ShouldEqual, "abc-123")
		})
	})
}
