package handlers

import (
	"context"
	"net/http"
	"time"

	"carboncalc/internal/models"
	"carboncalc/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockFootprint struct {
	calcResult    models.FootprintResult
	calcErr       error
	recommendResp []models.RecommendationCategory
	recommendErr  error

	lastCalcInput      models.FootprintInput
	lastRecommendInput models.FootprintInput
	calcCalls          int
	recommendCalls     int
}

func (m *mockFootprint) Calculate(ctx context.Context, in models.FootprintInput) (models.FootprintResult, error) {
	m.calcCalls++
	m.lastCalcInput = in
	return m.calcResult, m.calcErr
}
func (m *mockFootprint) Recommend(ctx context.Context, in models.FootprintInput) ([]models.RecommendationCategory, error) {
	m.recommendCalls++
	m.lastRecommendInput = in
	return m.recommendResp, m.recommendErr
}

type mockHistory struct {
	listResp   []models.CalculationRecord
	listErr    error
	latestResp models.CalculationRecord
	latestErr  error

	lastFrom time.Time
	lastTo   time.Time
}

func (m *mockHistory) List(ctx context.Context, f service.HistoryFilter) ([]models.CalculationRecord, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	return m.listResp, m.listErr
}
func (m *mockHistory) Latest(ctx context.Context) (models.CalculationRecord, error) {
	return m.latestResp, m.latestErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
