// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/auth"
	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/categorization"
	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/dashboard"
	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/transaction"
	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/user"
	"github.com/7LayerLabs/spendsignal2.0/internal/infra/server/router"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/adapters"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/email"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/entrypoint/controller"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/entrypoint/middleware"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/persistence"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/persistence/model"
	"github.com/7LayerLabs/spendsignal2.0/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var (
	serverInit     sync.Once
	portInit       sync.Once
	testDB         *mock.Db
	testEmail      *email.MockEmailSender
	testServerPort int
)

type testContext struct {
	uri               string
	headers           map[string]string
	client            *http.Client
	response          *response
	db                *mock.Db
	serverPort        int
	accessToken       string
	refreshToken      string
	currentUserID     uuid.UUID
	transactionIDs    []uuid.UUID
	lastTransactionID uuid.UUID
}

type response struct {
	status int
	body   any
}

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"users":           &model.UserModel{},
			"refresh_tokens":  &model.RefreshTokenModel{},
			"transactions":    &model.TransactionModel{},
			"categorizations": &model.CategorizationModel{},
			"import_batches":  &model.ImportBatchModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user has a monthly income of "([^"]*)"$`, test.theUserHasAMonthlyIncomeOf)
	ctx.Given(`^the user has opted out of the weekly digest$`, test.theUserHasOptedOutOfTheWeeklyDigest)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)

	// Transaction setup steps
	ctx.Given(`^a transaction exists for "([^"]*)" of "([^"]*)" on "([^"]*)"$`, test.aTransactionExistsFor)
	ctx.Given(`^the transaction is categorized as "([^"]*)"$`, test.theTransactionIsCategorizedAs)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I upload a CSV file to "([^"]*)" with content:$`, test.iUploadACSVFileToWithContent)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Email assertion steps
	ctx.Then(`^a digest email should be sent to "([^"]*)"$`, test.aDigestEmailShouldBeSentTo)
	ctx.Then(`^no email should be sent$`, test.noEmailShouldBeSent)
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
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.transactionIDs = nil
	t.lastTransactionID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
	if testEmail != nil {
		testEmail.SentEmails = nil
		testEmail.FailError = nil
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			categorizationRepo := persistence.NewCategorizationRepository(testDB.DbConn)
			importBatchRepo := persistence.NewImportBatchRepository(testDB.DbConn)

			// Create adapters/services. The advisor and bank provider get no
			// credentials so suggestions stay rule-based and sync reports the
			// provider as unavailable.
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			insightCache := adapters.NewInsightCache(mock.NewRedis())
			zoneAdvisor := adapters.NewGeminiZoneAdvisor("")
			bankProvider := adapters.NewPlaidProvider(adapters.PlaidConfig{})
			testEmail = email.NewMockEmailSender()

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

			// Create user use cases
			updateSettingsUseCase := user.NewUpdateSettingsUseCase(userRepo)

			// Create transaction use cases
			listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
			createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
			deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
			importCSVUseCase := transaction.NewImportCSVUseCase(transactionRepo, importBatchRepo)
			syncTransactionsUseCase := transaction.NewSyncTransactionsUseCase(transactionRepo, importBatchRepo, bankProvider)

			// Create categorization use cases
			categorizeUseCase := categorization.NewCategorizeTransactionUseCase(transactionRepo, categorizationRepo)
			autoCategorizeUseCase := categorization.NewAutoCategorizeUseCase(transactionRepo, categorizationRepo, zoneAdvisor)
			zoneSummaryUseCase := categorization.NewGetZoneSummaryUseCase(transactionRepo, categorizationRepo)

			// Create dashboard use cases
			getInsightsUseCase := dashboard.NewGetInsightsUseCase(transactionRepo, categorizationRepo, userRepo, insightCache)
			getHealthScoreUseCase := dashboard.NewGetHealthScoreUseCase(transactionRepo, categorizationRepo)
			getTrendsUseCase := dashboard.NewGetTrendsUseCase(transactionRepo, categorizationRepo)
			sendDigestUseCase := dashboard.NewSendDigestUseCase(userRepo, transactionRepo, categorizationRepo, testEmail)

			// Create controllers
			healthController := controller.NewHealthController(testDB.DbConn)
			authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshTokenUseCase, logoutUseCase)
			userController := controller.NewUserController(updateSettingsUseCase)
			transactionController := controller.NewTransactionController(
				listTransactionsUseCase,
				createTransactionUseCase,
				deleteTransactionUseCase,
				importCSVUseCase,
				syncTransactionsUseCase,
			)
			categorizationController := controller.NewCategorizationController(
				categorizeUseCase,
				autoCategorizeUseCase,
				zoneSummaryUseCase,
			)
			classificationController := controller.NewClassificationController()
			dashboardController := controller.NewDashboardController(
				getInsightsUseCase,
				getHealthScoreUseCase,
				getTrendsUseCase,
				sendDigestUseCase,
			)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				userController,
				transactionController,
				categorizationController,
				classificationController,
				dashboardController,
				loginRateLimiter,
				authMiddleware,
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

func (t *testContext) aUserExistsWithEmail(emailAddr string) error {
	return t.createUser(emailAddr, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(emailAddr, password string) error {
	return t.createUser(emailAddr, password, "Test User")
}

func (t *testContext) createUser(emailAddr, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	userModel := &model.UserModel{
		ID:              userID,
		Email:           emailAddr,
		Name:            name,
		PasswordHash:    hashPassword(password),
		DigestEnabled:   true,
		TermsAcceptedAt: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return t.db.DbConn.Create(userModel).Error
}

func (t *testContext) theUserHasAMonthlyIncomeOf(amount string) error {
	income, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid income amount '%s': %w", amount, err)
	}
	return t.db.DbConn.Model(&model.UserModel{}).
		Where("id = ?", t.currentUserID).
		Update("monthly_income", income).Error
}

func (t *testContext) theUserHasOptedOutOfTheWeeklyDigest() error {
	return t.db.DbConn.Model(&model.UserModel{}).
		Where("id = ?", t.currentUserID).
		Update("digest_enabled", false).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	now := time.Now().UTC()

	accessToken, err := t.signToken("access", now, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessToken

	refreshToken, err := t.signToken("refresh", now, 7*24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshToken

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func (t *testContext) signToken(tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(ttl)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "spendsignal",
		"sub":        t.currentUserID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

func (t *testContext) aTransactionExistsFor(merchant, amount, date string) error {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	transactionID := uuid.New()
	t.lastTransactionID = transactionID
	t.transactionIDs = append(t.transactionIDs, transactionID)

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:           transactionID,
		UserID:       t.currentUserID,
		Date:         parsedDate,
		MerchantName: merchant,
		Amount:       parsedAmount,
		Source:       "manual",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(transactionModel).Error
}

func (t *testContext) theTransactionIsCategorizedAs(zone string) error {
	now := time.Now().UTC()
	categorizationModel := &model.CategorizationModel{
		ID:            uuid.New(),
		UserID:        t.currentUserID,
		TransactionID: t.lastTransactionID,
		Zone:          zone,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return t.db.DbConn.Create(categorizationModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replaceTokenPlaceholders(path)
	return t.executeRequest(method, path, nil, "")
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replaceTokenPlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replaceTokenPlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload, "application/json")
}

func (t *testContext) iUploadACSVFileToWithContent(path string, content *godog.DocString) error {
	path = t.replaceTokenPlaceholders(path)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "transactions.csv")
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.WriteString(part, content.Content); err != nil {
		return fmt.Errorf("failed to write CSV content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return t.executeRequest(http.MethodPost, path, buf.Bytes(), writer.FormDataContentType())
}

func (t *testContext) replaceTokenPlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())

	if len(t.transactionIDs) > 0 {
		ids := make([]string, len(t.transactionIDs))
		for i, id := range t.transactionIDs {
			ids[i] = fmt.Sprintf(`"%s"`, id.String())
		}
		content = strings.ReplaceAll(content, "{{transaction_ids}}", "["+strings.Join(ids, ", ")+"]")
	}

	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte, contentType string) error {
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

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

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

		// Capture the created transaction ID so later steps can address it
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				if _, isTransaction := responseBody["merchant_name"]; isTransaction {
					t.lastTransactionID = id
					t.transactionIDs = append(t.transactionIDs, id)
				}
			}
		}
	}

	return nil
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

	if getFieldValue(body, field) == nil {
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
	if err := json.Unmarshal([]byte(t.replaceTokenPlaceholders(content.Content)), &criteria); err != nil {
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

func (t *testContext) aDigestEmailShouldBeSentTo(recipient string) error {
	if testEmail == nil {
		return errors.New("email sender not initialized")
	}
	for _, sent := range testEmail.SentEmails {
		if sent.To == recipient {
			return nil
		}
	}
	return fmt.Errorf("no email sent to '%s' (sent: %d)", recipient, len(testEmail.SentEmails))
}

func (t *testContext) noEmailShouldBeSent() error {
	if testEmail == nil {
		return nil
	}
	if len(testEmail.SentEmails) > 0 {
		return fmt.Errorf("expected no emails, got %d", len(testEmail.SentEmails))
	}
	return nil
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
