//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/application/usecase/installment"
	"github.com/finance-planner/backend/internal/application/usecase/investment"
	"github.com/finance-planner/backend/internal/application/usecase/ledger"
	"github.com/finance-planner/backend/internal/application/usecase/patrimony"
	"github.com/finance-planner/backend/internal/application/usecase/recurrence"
	"github.com/finance-planner/backend/internal/application/usecase/simulation"
	"github.com/finance-planner/backend/internal/infra/server/router"
	"github.com/finance-planner/backend/internal/integration/cache"
	"github.com/finance-planner/backend/internal/integration/entrypoint/controller"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-planner/backend/internal/integration/persistence"
	"github.com/finance-planner/backend/internal/integration/persistence/model"
	"github.com/finance-planner/backend/test/integration/mock"
)

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri                 string
	headers             map[string]string
	client              *http.Client
	response            *response
	db                  *mock.Db
	serverPort          int
	currentUserID       uuid.UUID
	currentObligationID uuid.UUID
	currentPurchaseID   uuid.UUID
	currentEntryID      uuid.UUID
	currentInvestmentID uuid.UUID
	currentAssetID      uuid.UUID
}

type response struct {
	status int
	body   any
	err    error
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("finance_planner", map[string]any{
			"recurring_obligations": &model.RecurringObligationModel{},
			"installment_purchases": &model.InstallmentPurchaseModel{},
			"ledger_entries":        &model.LedgerEntryModel{},
			"investments":           &model.InvestmentModel{},
			"investment_events":     &model.InvestmentEventModel{},
			"patrimony_assets":      &model.PatrimonyAssetModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Identity steps
	ctx.Given(`^I am identified as a user$`, test.iAmIdentifiedAsAUser)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Data setup steps
	ctx.Given(`^a monthly "([^"]*)" obligation "([^"]*)" of "([^"]*)" exists starting "([^"]*)"$`, test.aMonthlyObligationExists)
	ctx.Given(`^an installment purchase "([^"]*)" of "([^"]*)" in (\d+) installments exists starting "([^"]*)"$`, test.anInstallmentPurchaseExists)
	ctx.Given(`^a ledger entry of type "([^"]*)" and amount "([^"]*)" exists dated "([^"]*)"$`, test.aLedgerEntryExists)
	ctx.Given(`^an investment "([^"]*)" with value "([^"]*)" and annual rate (\d+(?:\.\d+)?) exists$`, test.anInvestmentExists)
	ctx.Given(`^a patrimony asset "([^"]*)" valued "([^"]*)" exists$`, test.aPatrimonyAssetExists)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.currentUserID = uuid.Nil
	t.currentObligationID = uuid.Nil
	t.currentPurchaseID = uuid.Nil
	t.currentEntryID = uuid.Nil
	t.currentInvestmentID = uuid.Nil
	t.currentAssetID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			obligationRepo := persistence.NewRecurringObligationRepository(testDB.DbConn)
			purchaseRepo := persistence.NewInstallmentPurchaseRepository(testDB.DbConn)
			ledgerRepo := persistence.NewLedgerRepository(testDB.DbConn)
			investmentRepo := persistence.NewInvestmentRepository(testDB.DbConn)
			assetRepo := persistence.NewPatrimonyAssetRepository(testDB.DbConn)

			// Create cache backed by an in-memory Redis
			seriesCache := cache.NewPatrimonySeriesCache(mock.NewRedis(), 10*time.Minute)

			// Create recurrence use cases
			createObligationUseCase := recurrence.NewCreateObligationUseCase(obligationRepo, ledgerRepo)
			listObligationsUseCase := recurrence.NewListObligationsUseCase(obligationRepo)
			updateObligationUseCase := recurrence.NewUpdateObligationUseCase(obligationRepo)
			setObligationActiveUseCase := recurrence.NewSetObligationActiveUseCase(obligationRepo)
			deleteObligationUseCase := recurrence.NewDeleteObligationUseCase(obligationRepo)

			// Create installment use cases
			createPurchaseUseCase := installment.NewCreatePurchaseUseCase(purchaseRepo, ledgerRepo)
			listPurchasesUseCase := installment.NewListPurchasesUseCase(purchaseRepo)
			payInstallmentUseCase := installment.NewPayInstallmentUseCase(purchaseRepo)
			updatePurchaseUseCase := installment.NewUpdatePurchaseUseCase(purchaseRepo)
			deletePurchaseUseCase := installment.NewDeletePurchaseUseCase(purchaseRepo)

			// Create ledger use cases
			createEntryUseCase := ledger.NewCreateEntryUseCase(ledgerRepo)
			listEntriesUseCase := ledger.NewListEntriesUseCase(ledgerRepo)
			updateEntryUseCase := ledger.NewUpdateEntryUseCase(ledgerRepo)
			deleteEntryUseCase := ledger.NewDeleteEntryUseCase(ledgerRepo)
			deleteFutureEntriesUseCase := ledger.NewDeleteFutureEntriesUseCase(ledgerRepo, obligationRepo, purchaseRepo)

			// Create investment use cases
			createInvestmentUseCase := investment.NewCreateInvestmentUseCase(investmentRepo, seriesCache)
			listInvestmentsUseCase := investment.NewListInvestmentsUseCase(investmentRepo)
			contributeUseCase := investment.NewContributeUseCase(investmentRepo, seriesCache)
			withdrawUseCase := investment.NewWithdrawUseCase(investmentRepo, seriesCache)
			updateInvestmentUseCase := investment.NewUpdateInvestmentUseCase(investmentRepo, seriesCache)
			deleteInvestmentUseCase := investment.NewDeleteInvestmentUseCase(investmentRepo, seriesCache)

			// Create patrimony use cases
			createAssetUseCase := patrimony.NewCreateAssetUseCase(assetRepo, seriesCache)
			listAssetsUseCase := patrimony.NewListAssetsUseCase(assetRepo)
			updateAssetUseCase := patrimony.NewUpdateAssetUseCase(assetRepo, seriesCache)
			deleteAssetUseCase := patrimony.NewDeleteAssetUseCase(assetRepo, seriesCache)
			reconstructHistoryUseCase := patrimony.NewReconstructHistoryUseCase(investmentRepo, assetRepo, seriesCache)

			// Create simulation use cases
			projectGrowthUseCase := simulation.NewProjectGrowthUseCase()
			requiredPaymentUseCase := simulation.NewRequiredPaymentUseCase()

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})

			recurringController := controller.NewRecurringController(
				createObligationUseCase,
				listObligationsUseCase,
				updateObligationUseCase,
				setObligationActiveUseCase,
				deleteObligationUseCase,
			)

			installmentController := controller.NewInstallmentController(
				createPurchaseUseCase,
				listPurchasesUseCase,
				payInstallmentUseCase,
				updatePurchaseUseCase,
				deletePurchaseUseCase,
			)

			ledgerController := controller.NewLedgerController(
				createEntryUseCase,
				listEntriesUseCase,
				updateEntryUseCase,
				deleteEntryUseCase,
				deleteFutureEntriesUseCase,
			)

			investmentController := controller.NewInvestmentController(
				createInvestmentUseCase,
				listInvestmentsUseCase,
				contributeUseCase,
				withdrawUseCase,
				updateInvestmentUseCase,
				deleteInvestmentUseCase,
			)

			patrimonyController := controller.NewPatrimonyController(
				createAssetUseCase,
				listAssetsUseCase,
				updateAssetUseCase,
				deleteAssetUseCase,
				reconstructHistoryUseCase,
			)

			simulationController := controller.NewSimulationController(
				projectGrowthUseCase,
				requiredPaymentUseCase,
			)

			// High limits so sequential scenarios never trip the limiter
			simulationRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)

			r := router.NewRouter(
				healthController,
				recurringController,
				installmentController,
				ledgerController,
				investmentController,
				patrimonyController,
				simulationController,
				simulationRateLimiter,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) iAmIdentifiedAsAUser() error {
	if t.currentUserID == uuid.Nil {
		t.currentUserID = uuid.New()
	}
	t.headers["X-User-ID"] = t.currentUserID.String()
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) userID() uuid.UUID {
	if t.currentUserID == uuid.Nil {
		t.currentUserID = uuid.New()
	}
	return t.currentUserID
}

func (t *testContext) aMonthlyObligationExists(kind, description, amount string, startDate string) error {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return fmt.Errorf("invalid start date '%s': %w", startDate, err)
	}

	cents, err := parseCents(amount)
	if err != nil {
		return err
	}

	obligationID := uuid.New()
	t.currentObligationID = obligationID

	now := time.Now().UTC()
	obligation := &model.RecurringObligationModel{
		ID:          obligationID,
		UserID:      t.userID(),
		Description: description,
		Kind:        kind,
		AmountCents: cents,
		Frequency:   "monthly",
		StartDate:   start,
		HorizonCap:  12,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return t.db.DbConn.Create(obligation).Error
}

func (t *testContext) anInstallmentPurchaseExists(description, total string, count int, startDate string) error {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return fmt.Errorf("invalid start date '%s': %w", startDate, err)
	}

	totalCents, err := parseCents(total)
	if err != nil {
		return err
	}

	purchaseID := uuid.New()
	t.currentPurchaseID = purchaseID

	now := time.Now().UTC()
	purchase := &model.InstallmentPurchaseModel{
		ID:                     purchaseID,
		UserID:                 t.userID(),
		Description:            description,
		TotalAmountCents:       totalCents,
		InstallmentCount:       count,
		InstallmentAmountCents: totalCents / int64(count),
		PaidCount:              0,
		StartDate:              start,
		Active:                 true,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	return t.db.DbConn.Create(purchase).Error
}

func (t *testContext) aLedgerEntryExists(entryType, amount, date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}

	cents, err := parseCents(amount)
	if err != nil {
		return err
	}

	entryID := uuid.New()
	t.currentEntryID = entryID

	now := time.Now().UTC()
	entry := &model.LedgerEntryModel{
		ID:          entryID,
		UserID:      t.userID(),
		Type:        entryType,
		AmountCents: cents,
		Date:        day,
		SourceType:  "none",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return t.db.DbConn.Create(entry).Error
}

func (t *testContext) anInvestmentExists(name, value string, rate string) error {
	cents, err := parseCents(value)
	if err != nil {
		return err
	}

	annualRate, err := strconv.ParseFloat(rate, 64)
	if err != nil {
		return fmt.Errorf("invalid rate '%s': %w", rate, err)
	}

	investmentID := uuid.New()
	t.currentInvestmentID = investmentID

	now := time.Now().UTC()
	investmentModel := &model.InvestmentModel{
		ID:                  investmentID,
		UserID:              t.userID(),
		Name:                name,
		CurrentValueCents:   cents,
		EstimatedAnnualRate: annualRate,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := t.db.DbConn.Create(investmentModel).Error; err != nil {
		return err
	}

	// Seed the opening balance event so reconstruction sees it
	event := &model.InvestmentEventModel{
		ID:           uuid.New(),
		InvestmentID: investmentID,
		UserID:       t.currentUserID,
		Kind:         "contribution",
		AmountCents:  cents,
		OccurredAt:   now,
		CreatedAt:    now,
	}
	return t.db.DbConn.Create(event).Error
}

func (t *testContext) aPatrimonyAssetExists(name, value string) error {
	cents, err := parseCents(value)
	if err != nil {
		return err
	}

	assetID := uuid.New()
	t.currentAssetID = assetID

	now := time.Now().UTC()
	asset := &model.PatrimonyAssetModel{
		ID:                  assetID,
		UserID:              t.userID(),
		Name:                name,
		EstimatedValueCents: cents,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	return t.db.DbConn.Create(asset).Error
}

// parseCents converts a decimal amount string like "1500.00" to cents.
func parseCents(amount string) (int64, error) {
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount '%s': %w", amount, err)
	}
	return int64(value*100 + 0.5), nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	content = strings.ReplaceAll(content, "{{obligation_id}}", t.currentObligationID.String())
	content = strings.ReplaceAll(content, "{{purchase_id}}", t.currentPurchaseID.String())
	content = strings.ReplaceAll(content, "{{entry_id}}", t.currentEntryID.String())
	content = strings.ReplaceAll(content, "{{investment_id}}", t.currentInvestmentID.String())
	content = strings.ReplaceAll(content, "{{asset_id}}", t.currentAssetID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
		t.captureIDs(responseBody)
	}

	return nil
}

// captureIDs keeps the IDs of created resources so later steps can
// reference them via placeholders.
func (t *testContext) captureIDs(body map[string]any) {
	capture := func(obj map[string]any) {
		idStr, ok := obj["id"].(string)
		if !ok {
			return
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return
		}

		switch {
		case hasKey(obj, "kind") && hasKey(obj, "frequency"):
			t.currentObligationID = id
		case hasKey(obj, "installment_count"):
			t.currentPurchaseID = id
		case hasKey(obj, "source_type"):
			t.currentEntryID = id
		case hasKey(obj, "current_value"):
			t.currentInvestmentID = id
		case hasKey(obj, "estimated_value"):
			t.currentAssetID = id
		}
	}

	capture(body)
	for _, key := range []string{"obligation", "purchase", "entry", "investment", "asset"} {
		if nested, ok := body[key].(map[string]any); ok {
			capture(nested)
		}
	}
}

func hasKey(obj map[string]any, key string) bool {
	_, ok := obj[key]
	return ok
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
