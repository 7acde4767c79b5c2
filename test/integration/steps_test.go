//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/driverdash/backend/config"
	"github.com/driverdash/backend/internal/application/usecase/trip"
	"github.com/driverdash/backend/internal/domain/entity"
	"github.com/driverdash/backend/internal/infra/dependency"
	"github.com/driverdash/backend/internal/integration/persistence/model"
	"github.com/driverdash/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	db            *mock.Db
	accessToken   string
	refreshToken  string
	resetToken    string
	expiredToken  string
	currentUserID uuid.UUID
	lastTripID    uuid.UUID
}

type response struct {
	status  int
	headers http.Header
	raw     string
	body    map[string]any
}

var serverInit sync.Once
var testDB *mock.Db
var testClock *mock.Clock
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"users":                 &model.UserModel{},
			"refresh_tokens":        &model.RefreshTokenModel{},
			"password_reset_tokens": &model.PasswordResetTokenModel{},
			"trips":                 &model.TripModel{},
		}),
	}

	testDB = test.db
	if testClock == nil {
		testClock = mock.NewClock()
	}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return c, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Given(`^an expired password reset token exists$`, test.anExpiredPasswordResetTokenExists)

	// Trip setup steps
	ctx.Given(`^the user has a trip on "([^"]*)" from "([^"]*)" to "([^"]*)" covering "([^"]*)" km at "([^"]*)" km\/l with fuel at "([^"]*)" earning "([^"]*)"$`, test.theUserHasATrip)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should be null$`, test.theResponseFieldShouldBeNull)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)

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
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.expiredToken = ""
	t.currentUserID = uuid.Nil
	t.lastTripID = uuid.Nil
	t.response = nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
	testClock.SetCurrentTime(time.Now().UTC())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			cfg.Server.Environment = "test"
			cfg.JWT.Secret = testJWTSecret
			cfg.Email.ResendAPIKey = ""

			injector := dependency.NewInjector(cfg, testDB.DbConn, mock.NewRedis(), testClock)
			engine := injector.Router.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
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

func (t *testContext) todayIs(date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	testClock.SetCurrentTime(day.UTC())
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test Driver")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test Driver")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(user).Error
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

	accessTokenString, err := signToken("access", t.currentUserID, now, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshTokenString, err := signToken("refresh", t.currentUserID, now, 7*24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

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

func signToken(tokenType string, userID uuid.UUID, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      "driver@example.com",
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(ttl)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "driverdash",
		"sub":        userID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    user.ID,
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}
	return t.db.DbConn.Create(resetTokenModel).Error
}

func (t *testContext) anExpiredPasswordResetTokenExists() error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.expiredToken,
		UserID:    uuid.New(),
		Email:     "expired@example.com",
		Used:      false,
		ExpiresAt: time.Now().Add(-1 * time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	return t.db.DbConn.Create(resetTokenModel).Error
}

// theUserHasATrip seeds a trip through the same derivation path the API uses,
// so the stored derived fields match what a POST would have produced.
func (t *testContext) theUserHasATrip(date, startTime, endTime, distance, consumption, price, earnings string) error {
	derivation, err := trip.Derive(trip.DeriveInput{
		Date:            date,
		Distance:        distance,
		FuelConsumption: consumption,
		FuelPrice:       price,
		StartTime:       startTime,
		EndTime:         endTime,
		Earnings:        earnings,
	})
	if err != nil {
		return fmt.Errorf("failed to derive seed trip: %w", err)
	}

	tripEntity := entity.NewTrip(t.currentUserID)
	tripEntity.Date = derivation.Date
	tripEntity.Distance = derivation.Distance
	tripEntity.FuelConsumption = derivation.FuelConsumption
	tripEntity.FuelPrice = derivation.FuelPrice
	tripEntity.StartTime = derivation.StartTime
	tripEntity.EndTime = derivation.EndTime
	tripEntity.Earnings = derivation.Earnings
	tripEntity.LitersUsed = derivation.LitersUsed
	tripEntity.FuelCost = derivation.FuelCost
	tripEntity.WorkedMinutes = derivation.WorkedMinutes
	tripEntity.NetEarnings = derivation.NetEarnings
	tripEntity.EarningsPerKm = derivation.EarningsPerKm
	tripEntity.EarningsPerHour = derivation.EarningsPerHour

	t.lastTripID = tripEntity.ID
	return t.db.DbConn.Create(model.TripFromEntity(tripEntity)).Error
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
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	content = strings.ReplaceAll(content, "{{expired_reset_token}}", t.expiredToken)
	content = strings.ReplaceAll(content, "{{trip_id}}", t.lastTripID.String())
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
		status:  resp.StatusCode,
		headers: resp.Header,
		raw:     string(bodyBytes),
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err == nil {
		t.response.body = responseBody

		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastTripID = id
			}
		}
		if token, ok := responseBody["access_token"].(string); ok && token != "" {
			t.accessToken = token
		}
		if token, ok := responseBody["refresh_token"].(string); ok && token != "" {
			t.refreshToken = token
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expectedStatus, t.response.status, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.body == nil {
		return fmt.Errorf("response is not JSON: %s", t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(t.response.raw, expected) {
		return fmt.Errorf("response does not contain %q (body: %s)", expected, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if err := t.theResponseShouldBeJSON(); err != nil {
		return err
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field %q expected %q, got %q", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if err := t.theResponseShouldBeJSON(); err != nil {
		return err
	}

	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeNull(field string) error {
	if err := t.theResponseShouldBeJSON(); err != nil {
		return err
	}

	// Distinguish an explicit null from a missing key
	parts := strings.Split(field, ".")
	current := any(t.response.body)
	for i, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
		}
		value, exists := m[part]
		if !exists {
			return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
		}
		if i == len(parts)-1 {
			if value != nil {
				return fmt.Errorf("field %q expected null, got %v", field, value)
			}
			return nil
		}
		current = value
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldContain(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	actual := t.response.headers.Get(header)
	if !strings.Contains(actual, expected) {
		return fmt.Errorf("header %q expected to contain %q, got %q", header, expected, actual)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	count, err := t.countRows(entityModel, nil)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q, got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	count, err := t.countRows(entityModel, criteria)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) countRows(entityModel any, criteria map[string]any) (int, error) {
	entityType := reflect.TypeOf(entityModel).Elem()
	slicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Model(entityModel)
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	if err := query.Find(slicePtr.Interface()).Error; err != nil {
		return 0, err
	}
	return slicePtr.Elem().Len(), nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	fields := strings.Split(dotSeparatedField, ".")
	var field any = object

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
