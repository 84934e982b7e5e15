// Package steps contains the Godog step definitions for the BDD suite.
// Each scenario runs against the full application wired through the
// dependency injector, backed by a shared in-memory SQLite database and an
// embedded Redis.
package steps

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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ecap-app/backend/config"
	"github.com/ecap-app/backend/internal/infra/dependency"
	"github.com/ecap-app/backend/internal/integration/adapters"
	"github.com/ecap-app/backend/internal/integration/persistence/model"
	"github.com/ecap-app/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri    string
	client *http.Client

	db          *mock.Db
	headers     map[string]string
	response    *response
	accessToken string

	currentUserID uuid.UUID
	userIDs       map[string]uuid.UUID

	lastRecordID  uuid.UUID
	lastGoalID    uuid.UUID
	lastReportID  uuid.UUID
	lastRequestID uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
	})
}

// InitializeTestSuite sets up suite-level hooks.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {}

// InitializeScenario registers all step definitions and per-scenario hooks.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"users":           &model.UserModel{},
			"records":         &model.RecordModel{},
			"saving_goals":    &model.SavingGoalModel{},
			"reports":         &model.ReportModel{},
			"friend_requests": &model.FriendRequestModel{},
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
	ctx.Given(`^a user exists with username "([^"]*)"$`, test.aUserExistsWithUsername)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Data seeding steps
	ctx.Given(`^I have the following records:$`, test.iHaveTheFollowingRecords)
	ctx.Given(`^the user "([^"]*)" has the following records:$`, test.theUserHasTheFollowingRecords)
	ctx.Given(`^I have a saving goal "([^"]*)" targeting "([^"]*)" with "([^"]*)" saved by "([^"]*)"$`, test.iHaveASavingGoal)
	ctx.Given(`^a pending friend request from "([^"]*)" to "([^"]*)" exists$`, test.aPendingFriendRequestExists)
	ctx.Given(`^"([^"]*)" and "([^"]*)" are friends$`, test.usersAreFriends)

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
	t.response = nil
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.userIDs = make(map[string]uuid.UUID)
	t.lastRecordID = uuid.Nil
	t.lastGoalID = uuid.Nil
	t.lastReportID = uuid.Nil
	t.lastRequestID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			cfg := &config.Config{
				Server: config.ServerConfig{
					Host:        "localhost",
					Port:        testServerPort,
					Environment: "test",
				},
				JWT: config.JWTConfig{
					Secret:            testJWTSecret,
					AccessTokenExpiry: 24 * time.Hour,
				},
				RateLimit: config.RateLimitConfig{
					MaxAttempts:    5,
					WindowDuration: time.Minute,
				},
			}

			injector := dependency.NewInjector(cfg, testDB.DbConn, mock.NewRedis())
			engine := injector.Router.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

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

func (t *testContext) aUserExistsWithUsername(username string) error {
	_, err := t.ensureUser(username)
	return err
}

func (t *testContext) ensureUser(username string) (uuid.UUID, error) {
	if id, ok := t.userIDs[username]; ok {
		return id, nil
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:        uuid.New(),
		Username:  username,
		Email:     username + "@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.DbConn.Create(user).Error; err != nil {
		return uuid.Nil, err
	}

	t.userIDs[username] = user.ID
	return user.ID, nil
}

func (t *testContext) iAmLoggedInAs(username string) error {
	userID, err := t.ensureUser(username)
	if err != nil {
		return err
	}
	t.currentUserID = userID

	tokenService := adapters.NewTokenService(testJWTSecret)
	token, err := tokenService.GenerateAccessToken(context.Background(), userID, username+"@example.com")
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = token
	return nil
}

func (t *testContext) iHaveTheFollowingRecords(table *godog.Table) error {
	if t.currentUserID == uuid.Nil {
		return errors.New("no user is logged in")
	}
	return t.seedRecords(t.currentUserID, table)
}

func (t *testContext) theUserHasTheFollowingRecords(username string, table *godog.Table) error {
	userID, err := t.ensureUser(username)
	if err != nil {
		return err
	}
	return t.seedRecords(userID, table)
}

// seedRecords inserts records from a table with columns kind, date, amount,
// category and an optional description column.
func (t *testContext) seedRecords(userID uuid.UUID, table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("records table needs a header row and at least one data row")
	}

	columns := make(map[string]int, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		columns[cell.Value] = i
	}

	for _, row := range table.Rows[1:] {
		cell := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(row.Cells) {
				return ""
			}
			return row.Cells[idx].Value
		}

		date, err := time.Parse("2006-01-02", cell("date"))
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", cell("date"), err)
		}
		amount, err := decimal.NewFromString(cell("amount"))
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", cell("amount"), err)
		}

		now := time.Now().UTC()
		record := &model.RecordModel{
			ID:          uuid.New(),
			UserID:      userID,
			Kind:        cell("kind"),
			Date:        date,
			Amount:      amount,
			Category:    cell("category"),
			Description: cell("description"),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := t.db.DbConn.Create(record).Error; err != nil {
			return err
		}
		t.lastRecordID = record.ID
	}
	return nil
}

func (t *testContext) iHaveASavingGoal(name, target, current, targetDate string) error {
	if t.currentUserID == uuid.Nil {
		return errors.New("no user is logged in")
	}

	targetAmount, err := decimal.NewFromString(target)
	if err != nil {
		return fmt.Errorf("invalid target amount %q: %w", target, err)
	}
	currentAmount, err := decimal.NewFromString(current)
	if err != nil {
		return fmt.Errorf("invalid current amount %q: %w", current, err)
	}
	date, err := time.Parse("2006-01-02", targetDate)
	if err != nil {
		return fmt.Errorf("invalid target date %q: %w", targetDate, err)
	}

	now := time.Now().UTC()
	goal := &model.SavingGoalModel{
		ID:            uuid.New(),
		UserID:        t.currentUserID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    date,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := t.db.DbConn.Create(goal).Error; err != nil {
		return err
	}
	t.lastGoalID = goal.ID
	return nil
}

func (t *testContext) aPendingFriendRequestExists(requester, recipient string) error {
	return t.createFriendRequest(requester, recipient, "pending")
}

func (t *testContext) usersAreFriends(requester, recipient string) error {
	return t.createFriendRequest(requester, recipient, "accepted")
}

func (t *testContext) createFriendRequest(requester, recipient, status string) error {
	requesterID, err := t.ensureUser(requester)
	if err != nil {
		return err
	}
	recipientID, err := t.ensureUser(recipient)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	request := &model.FriendRequestModel{
		ID:          uuid.New(),
		RequesterID: requesterID,
		RecipientID: recipientID,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.db.DbConn.Create(request).Error; err != nil {
		return err
	}
	t.lastRequestID = request.ID
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

// replacePlaceholders substitutes identifiers captured from earlier steps.
// The {{user:<name>}} form resolves to the ID of a user created by a setup
// step.
func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{record_id}}", t.lastRecordID.String())
	content = strings.ReplaceAll(content, "{{goal_id}}", t.lastGoalID.String())
	content = strings.ReplaceAll(content, "{{report_id}}", t.lastReportID.String())
	content = strings.ReplaceAll(content, "{{request_id}}", t.lastRequestID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())

	for username, id := range t.userIDs {
		content = strings.ReplaceAll(content, "{{user:"+username+"}}", id.String())
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	url := t.uri + path

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, body)
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

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody
	t.captureIDs(path, responseBody)
	return nil
}

// captureIDs records IDs returned by create endpoints so later steps can
// reference them through placeholders.
func (t *testContext) captureIDs(path string, body map[string]any) {
	idStr, ok := body["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	switch {
	case strings.Contains(path, "/reports"):
		t.lastReportID = id
	case strings.Contains(path, "/friends"):
		t.lastRequestID = id
	case strings.Contains(path, "/goals"):
		t.lastGoalID = id
	case strings.Contains(path, "/expenses"), strings.Contains(path, "/incomes"):
		t.lastRecordID = id
	}
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
	body, err := t.responseObject()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field %q: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field %q not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	expectedValue = t.replacePlaceholders(expectedValue)
	if actualValue != expectedValue {
		return fmt.Errorf("field %q expected %q, got %q", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field %q not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) responseObject() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	entityType := reflect.TypeOf(entityModel).Elem()
	slicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(slicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
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
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
		} else {
			m, ok := field.(map[string]any)
			if !ok {
				return nil
			}
			field = m[currentField]
		}
	}

	return field
}
