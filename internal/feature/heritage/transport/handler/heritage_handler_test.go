package handler

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heritage_backend/internal/app/views"
	"heritage_backend/internal/feature/heritage/domain/entity"
	"heritage_backend/internal/feature/heritage/usecase"
	"heritage_backend/internal/platform/mapdoc"
	"heritage_backend/internal/platform/session"
)

// mockHeritageUsecase is a mock implementation of the HeritageUsecase interface.
type mockHeritageUsecase struct {
	AddFunc         func(ctx context.Context, ownerID uint, name, lat, lon string) error
	ListForUserFunc func(ctx context.Context, userID uint) ([]entity.PointWithOwner, error)
}

func (m *mockHeritageUsecase) Add(ctx context.Context, ownerID uint, name, lat, lon string) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, ownerID, name, lat, lon)
	}
	return nil
}

func (m *mockHeritageUsecase) ListForUser(ctx context.Context, userID uint) ([]entity.PointWithOwner, error) {
	if m.ListForUserFunc != nil {
		return m.ListForUserFunc(ctx, userID)
	}
	return nil, nil
}

// mockMapWriter captures the last rendered document.
type mockMapWriter struct {
	WriteFunc func(doc mapdoc.Document) error
	doc       *mapdoc.Document
}

func (m *mockMapWriter) Write(doc mapdoc.Document) error {
	m.doc = &doc
	if m.WriteFunc != nil {
		return m.WriteFunc(doc)
	}
	return nil
}

// newTestRouter registers the handler behind a stub auth middleware that
// injects a fixed identity, the way AuthRequired does.
func newTestRouter(h *HeritageHandler) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.ParseFS(views.Content, "templates/*.html")))
	r.Use(func(c *gin.Context) {
		c.Set(session.ContextUserID, uint(7))
		c.Set(session.ContextUserName, "ama")
	})
	r.GET("/", h.Index)
	r.GET("/ajouter", h.ShowAdd)
	r.POST("/ajouter", h.Add)
	r.GET("/itineraire", h.Directions)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHeritageHandler_Index(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("single point: close zoom centered on it", func(t *testing.T) {
		uc := &mockHeritageUsecase{
			ListForUserFunc: func(ctx context.Context, userID uint) ([]entity.PointWithOwner, error) {
				assert.Equal(t, uint(7), userID)
				return []entity.PointWithOwner{
					{Name: "Maison", Latitude: "6.130000", Longitude: "1.220000", OwnerName: "ama"},
				}, nil
			},
		}
		writer := &mockMapWriter{}
		router := newTestRouter(NewHeritageHandler(uc, writer))

		w := get(router, "/")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "/maps/carte.html")

		require.NotNil(t, writer.doc, "map document was not rendered")
		assert.Equal(t, 16, writer.doc.Zoom)
		assert.Equal(t, [2]float64{6.13, 1.22}, writer.doc.Center)
		assert.False(t, writer.doc.FitBounds)
		require.Len(t, writer.doc.Markers, 1)
		marker := writer.doc.Markers[0]
		assert.Equal(t, "Maison", marker.Name)
		assert.Equal(t, "ama", marker.Owner)
		assert.Len(t, marker.Zone, 28, "accuracy polygon should have 28 vertices")
		assert.Contains(t, marker.DirectionsURL, "/itineraire?")
		assert.Contains(t, marker.DirectionsURL, "lat=6.130000")
	})

	t.Run("several points: wide zoom, mean center, fit bounds", func(t *testing.T) {
		uc := &mockHeritageUsecase{
			ListForUserFunc: func(ctx context.Context, userID uint) ([]entity.PointWithOwner, error) {
				return []entity.PointWithOwner{
					{Name: "A", Latitude: "6.000000", Longitude: "1.000000", OwnerName: "ama"},
					{Name: "B", Latitude: "8.000000", Longitude: "3.000000", OwnerName: "ama"},
				}, nil
			},
		}
		writer := &mockMapWriter{}
		router := newTestRouter(NewHeritageHandler(uc, writer))

		w := get(router, "/")

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, writer.doc)
		assert.Equal(t, 13, writer.doc.Zoom)
		assert.InDelta(t, 7.0, writer.doc.Center[0], 1e-9)
		assert.InDelta(t, 2.0, writer.doc.Center[1], 1e-9)
		assert.True(t, writer.doc.FitBounds)
		assert.Len(t, writer.doc.Bounds, 2)
		assert.Len(t, writer.doc.Markers, 2)
	})

	t.Run("no points: default viewport", func(t *testing.T) {
		writer := &mockMapWriter{}
		router := newTestRouter(NewHeritageHandler(&mockHeritageUsecase{}, writer))

		w := get(router, "/")

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, writer.doc)
		assert.Equal(t, 12, writer.doc.Zoom)
		assert.Equal(t, [2]float64{6.13, 1.22}, writer.doc.Center)
		assert.Empty(t, writer.doc.Markers)
	})

	t.Run("listing failure still renders the page", func(t *testing.T) {
		uc := &mockHeritageUsecase{
			ListForUserFunc: func(ctx context.Context, userID uint) ([]entity.PointWithOwner, error) {
				return nil, errors.New("store down")
			},
		}
		writer := &mockMapWriter{}
		router := newTestRouter(NewHeritageHandler(uc, writer))

		w := get(router, "/")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, writer.doc, "no map should be rendered on failure")
		assert.Contains(t, w.Body.String(), "Impossible de charger")
	})
}

func TestHeritageHandler_Add(t *testing.T) {
	gin.SetMode(gin.TestMode)

	form := url.Values{
		"nom":       {"Maison"},
		"latitude":  {"12.345678"},
		"longitude": {"-1.234567"},
	}

	tests := []struct {
		name             string
		mockAddFunc      func(ctx context.Context, ownerID uint, name, lat, lon string) error
		expectedLocation string
	}{
		{
			name:             "success: redirects to the map view",
			mockAddFunc:      func(ctx context.Context, ownerID uint, name, lat, lon string) error { return nil },
			expectedLocation: "/",
		},
		{
			name: "duplicate coordinates: back to the form",
			mockAddFunc: func(ctx context.Context, ownerID uint, name, lat, lon string) error {
				return usecase.ErrDuplicateCoordinates
			},
			expectedLocation: "/ajouter",
		},
		{
			name: "invalid coordinates: back to the form",
			mockAddFunc: func(ctx context.Context, ownerID uint, name, lat, lon string) error {
				return usecase.ErrInvalidCoordinates
			},
			expectedLocation: "/ajouter",
		},
		{
			name: "store fault: back to the form with the generic notice",
			mockAddFunc: func(ctx context.Context, ownerID uint, name, lat, lon string) error {
				return errors.New("store down")
			},
			expectedLocation: "/ajouter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockHeritageUsecase{AddFunc: tt.mockAddFunc}
			router := newTestRouter(NewHeritageHandler(uc, &mockMapWriter{}))

			w := postForm(router, "/ajouter", form)

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, tt.expectedLocation, w.Header().Get("Location"))
		})
	}

	t.Run("passes the authenticated owner to the usecase", func(t *testing.T) {
		var gotOwner uint
		uc := &mockHeritageUsecase{
			AddFunc: func(ctx context.Context, ownerID uint, name, lat, lon string) error {
				gotOwner = ownerID
				return nil
			},
		}
		router := newTestRouter(NewHeritageHandler(uc, &mockMapWriter{}))

		postForm(router, "/ajouter", form)

		assert.Equal(t, uint(7), gotOwner)
	})
}

func TestHeritageHandler_Directions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("renders the directions page for a destination", func(t *testing.T) {
		router := newTestRouter(NewHeritageHandler(&mockHeritageUsecase{}, &mockMapWriter{}))

		w := get(router, "/itineraire?lat=6.130000&lon=1.220000&nom=Maison")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Maison")
		assert.Contains(t, w.Body.String(), "6.13")
	})

	t.Run("missing coordinates redirect home with a notice", func(t *testing.T) {
		router := newTestRouter(NewHeritageHandler(&mockHeritageUsecase{}, &mockMapWriter{}))

		for _, path := range []string{
			"/itineraire",
			"/itineraire?lat=6.13",
			"/itineraire?lon=1.22",
			"/itineraire?lat=abc&lon=1.22",
		} {
			w := get(router, path)

			assert.Equal(t, http.StatusSeeOther, w.Code, "path %s", path)
			assert.Equal(t, "/", w.Header().Get("Location"), "path %s", path)
		}
	})

	t.Run("destination name defaults to Patrimoine", func(t *testing.T) {
		router := newTestRouter(NewHeritageHandler(&mockHeritageUsecase{}, &mockMapWriter{}))

		w := get(router, "/itineraire?lat=6.130000&lon=1.220000")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Patrimoine")
	})
}
