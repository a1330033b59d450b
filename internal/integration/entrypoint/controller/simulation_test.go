package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/usecase/simulation"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

func newSimulationTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	c := NewSimulationController(
		simulation.NewProjectGrowthUseCase(),
		simulation.NewRequiredPaymentUseCase(),
	)
	engine := gin.New()
	group := engine.Group("/api/v1/simulations")
	group.Use(middleware.UserContext())
	group.POST("/growth", c.ProjectGrowth)
	group.POST("/required-payment", c.RequiredPayment)
	return engine
}

func postSimulation(t *testing.T, engine *gin.Engine, path, body string, identified bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if identified {
		req.Header.Set(middleware.UserIDHeader, uuid.NewString())
	}
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestProjectGrowthConvertsRequestAmounts(t *testing.T) {
	engine := newSimulationTestRouter()

	body := `{"initial": 1000.00, "monthly_contribution": 100.00, "annual_rate": 0, "years": 1}`
	recorder := postSimulation(t, engine, "/api/v1/simulations/growth", body, true)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response dto.ProjectGrowthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("unexpected error decoding response: %v", err)
	}
	if response.FinalAmount != "2200.00" {
		t.Errorf("expected final amount 2200.00, got %s", response.FinalAmount)
	}
	if response.TotalContributed != "2200.00" {
		t.Errorf("expected total contributed 2200.00, got %s", response.TotalContributed)
	}
	if response.TotalInterest != "0.00" {
		t.Errorf("expected total interest 0.00, got %s", response.TotalInterest)
	}
	if len(response.Samples) != 1 || response.Samples[0].Year != 1 {
		t.Errorf("expected one yearly sample for year 1, got %+v", response.Samples)
	}
}

func TestProjectGrowthRejectsInvalidYears(t *testing.T) {
	engine := newSimulationTestRouter()

	body := `{"initial": 1000.00, "years": 0}`
	recorder := postSimulation(t, engine, "/api/v1/simulations/growth", body, true)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", recorder.Code)
	}
}

func TestRequiredPaymentConvertsRequestAmounts(t *testing.T) {
	engine := newSimulationTestRouter()

	body := `{"target_amount": 100000.00, "annual_rate": 8, "years": 10}`
	recorder := postSimulation(t, engine, "/api/v1/simulations/required-payment", body, true)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response dto.RequiredPaymentResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("unexpected error decoding response: %v", err)
	}
	if response.Months != 120 {
		t.Errorf("expected 120 months, got %d", response.Months)
	}
	if response.MonthlyPayment == "" || response.MonthlyPayment == "0.00" {
		t.Errorf("expected a positive monthly payment, got %q", response.MonthlyPayment)
	}
}

func TestSimulationRequiresIdentity(t *testing.T) {
	engine := newSimulationTestRouter()

	body := `{"initial": 1000.00, "years": 1}`
	recorder := postSimulation(t, engine, "/api/v1/simulations/growth", body, false)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", recorder.Code)
	}
}
