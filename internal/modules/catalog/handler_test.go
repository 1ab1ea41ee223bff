package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starblog/internal/domain"
	"starblog/internal/middleware"
	"starblog/internal/repository"
	"starblog/internal/testdb"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.New(t)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	api := r.Group("")

	NewHandler[domain.People, CreatePeopleRequest](
		NewService[domain.People](repository.NewPeopleRepository(db)), domain.KindPeople).RegisterRoutes(api)
	NewHandler[domain.Planet, CreatePlanetRequest](
		NewService[domain.Planet](repository.NewPlanetRepository(db)), domain.KindPlanet).RegisterRoutes(api)
	NewHandler[domain.Vehicle, CreateVehicleRequest](
		NewService[domain.Vehicle](repository.NewVehicleRepository(db)), domain.KindVehicle).RegisterRoutes(api)
	return r
}

func doJSONRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

var samples = map[string]map[string]any{
	"people": {
		"name": "Yoda", "mass": 17, "height": 66, "hair_color": "white", "skin_color": "green",
		"eye_color": "brown", "birth_year": "896BBY", "gender": "male",
	},
	"planet": {
		"name": "Naboo", "diameter": 12120, "rotation_period": 26, "orbital_period": 312, "gravity": 1,
		"population": 4500000000, "climate": "temperate", "terrain": "grassy hills, swamps", "surface_water": "12",
	},
	"vehicle": {
		"name": "AT-AT", "model": "All Terrain Armored Transport", "manufacturer": "Kuat Drive Yards",
		"cost_in_credits": 0, "length": 20, "crew": 5, "passengers": 40,
	},
}

var nouns = map[string]string{"people": "Person", "planet": "Planet", "vehicle": "Vehicle"}

func create(t *testing.T, r http.Handler, kind string, body map[string]any) int64 {
	t.Helper()
	rr := doJSONRequest(r, http.MethodPost, "/"+kind, body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return int64(decode[map[string]any](t, rr)["id"].(float64))
}

func TestCatalog_CreateAndGet(t *testing.T) {
	r := setupTestRouter(t)

	for kind, body := range samples {
		t.Run(kind, func(t *testing.T) {
			id := create(t, r, kind, body)

			rr := doJSONRequest(r, http.MethodGet, fmt.Sprintf("/get-%s/%d", kind, id), nil)
			require.Equal(t, http.StatusOK, rr.Code)
			got := decode[map[string]any](t, rr)
			for field, want := range body {
				assert.EqualValues(t, want, got[field], field)
			}

			rr = doJSONRequest(r, http.MethodPost, "/get-"+kind, map[string]any{"id": id})
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, body["name"], decode[map[string]any](t, rr)["name"])

			rr = doJSONRequest(r, http.MethodGet, "/"+kind, nil)
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Len(t, decode[[]map[string]any](t, rr), 1)
		})
	}
}

func TestCatalog_CreateMissingField(t *testing.T) {
	r := setupTestRouter(t)

	body := map[string]any{}
	for k, v := range samples["vehicle"] {
		body[k] = v
	}
	delete(body, "crew")

	rr := doJSONRequest(r, http.MethodPost, "/vehicle", body)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "You need to specify the crew", decode[map[string]string](t, rr)["message"])
}

func TestCatalog_CreateDuplicateName(t *testing.T) {
	r := setupTestRouter(t)
	create(t, r, "people", samples["people"])

	rr := doJSONRequest(r, http.MethodPost, "/people", samples["people"])
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "Person name already exists", decode[map[string]string](t, rr)["message"])
}

func TestCatalog_RenamePersists(t *testing.T) {
	r := setupTestRouter(t)

	for kind, body := range samples {
		t.Run(kind, func(t *testing.T) {
			id := create(t, r, kind, body)
			newName := body["name"].(string) + " II"

			rr := doJSONRequest(r, http.MethodPut, "/get-"+kind, map[string]any{"id": id, "name": newName})
			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
			assert.Equal(t, newName, decode[map[string]any](t, rr)["name"])

			rr = doJSONRequest(r, http.MethodGet, fmt.Sprintf("/get-%s/%d", kind, id), nil)
			require.Equal(t, http.StatusOK, rr.Code)
			got := decode[map[string]any](t, rr)
			assert.Equal(t, newName, got["name"])
		})
	}
}

func TestCatalog_MissingIDs(t *testing.T) {
	r := setupTestRouter(t)

	for kind, noun := range nouns {
		cases := []struct {
			method string
			path   string
			body   any
		}{
			{http.MethodGet, "/get-" + kind + "/777", nil},
			{http.MethodPost, "/get-" + kind, map[string]any{"id": 777}},
			{http.MethodPut, "/get-" + kind, map[string]any{"id": 777, "name": "Ghost"}},
			{http.MethodDelete, "/get-" + kind, map[string]any{"id": 777}},
		}
		for _, tc := range cases {
			rr := doJSONRequest(r, tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", tc.method, tc.path)
			assert.Equal(t, noun+" not found", decode[map[string]string](t, rr)["message"])
		}
	}
}

func TestCatalog_Delete(t *testing.T) {
	r := setupTestRouter(t)

	for kind, body := range samples {
		t.Run(kind, func(t *testing.T) {
			id := create(t, r, kind, body)

			rr := doJSONRequest(r, http.MethodDelete, "/get-"+kind, map[string]any{"id": id})
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, nouns[kind]+" successfully deleted!", decode[map[string]string](t, rr)["message"])

			rr = doJSONRequest(r, http.MethodGet, fmt.Sprintf("/get-%s/%d", kind, id), nil)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}
