package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"uni_advisor_backend/internal/model"
	"uni_advisor_backend/internal/repository"
	"uni_advisor_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := repository.NewCatalogRepository([]model.ProgramRecord{
		{
			DegreeName: "Computer Science",
			Category:   "Engineering",
			Skills:     []string{"Math", "Coding"},
			MinGrade:   decimal.RequireFromString("4.0"),
		},
	})
	svc := service.NewRecommendationService(repo, service.RankingOptions{})

	router := gin.New()
	router.POST("/api/recommendations", NewRecommendationController(svc).Recommend)
	return router
}

func postRecommendation(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRecommendEndpoint_Match(t *testing.T) {
	router := newTestRouter()

	w := postRecommendation(t, router, `{"averageGrade":4.0,"categories":["Engineering"],"skills":["Math"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int                  `json:"code"`
		Data model.Recommendation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, model.OutcomeMatch, resp.Data.Outcome)
	require.Len(t, resp.Data.Matches, 1)
	assert.Equal(t, "Computer Science", resp.Data.Matches[0].Program.DegreeName)
}

func TestRecommendEndpoint_NoMatchIsOK(t *testing.T) {
	router := newTestRouter()

	w := postRecommendation(t, router, `{"averageGrade":3.9,"categories":["Engineering"],"skills":["Math"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.Recommendation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.OutcomeNoMatch, resp.Data.Outcome)
	assert.Empty(t, resp.Data.Matches)
}

func TestRecommendEndpoint_InvalidProfile(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		name string
		body string
	}{
		{"grade out of range", `{"averageGrade":2.5,"categories":["Engineering"],"skills":["Math"]}`},
		{"no categories", `{"averageGrade":4.0,"categories":[],"skills":["Math"]}`},
		{"no skills", `{"averageGrade":4.0,"categories":["Engineering"],"skills":[]}`},
		{"unknown mode", `{"averageGrade":4.0,"categories":["Engineering"],"skills":["Math"],"mode":"top3"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postRecommendation(t, router, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRecommendEndpoint_MalformedJSON(t *testing.T) {
	router := newTestRouter()

	w := postRecommendation(t, router, `{"averageGrade":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
