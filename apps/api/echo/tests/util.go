package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-playground/validator/v10"

	echoapi "github.com/trezcool/edulearn/apps/api/echo"
	"github.com/trezcool/edulearn/core"
	"github.com/trezcool/edulearn/core/catalog"
	"github.com/trezcool/edulearn/core/session"
	"github.com/trezcool/edulearn/core/user"
	emailsvc "github.com/trezcool/edulearn/services/email"
	logsvc "github.com/trezcool/edulearn/services/logger"
	dummydb "github.com/trezcool/edulearn/storage/database/dummy"
	"github.com/trezcool/edulearn/storage/seed"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type testApp struct {
	*echoapi.Server
	conf       *core.Config
	courseRepo catalog.Repository
	sessionSvc *session.Service
}

// setup returns a server over a freshly seeded store.
func setup(t *testing.T) *testApp {
	t.Helper()
	conf := core.NewTestConfig()
	logger := logsvc.NewNopLogger()

	db := dummydb.Open()
	courseRepo := dummydb.NewCourseRepository(db)
	accountRepo := dummydb.NewAccountRepository(db)
	if err := seed.Accounts(accountRepo); err != nil {
		t.Fatalf("seed.Accounts(): %v", err)
	}
	if _, err := seed.Catalog(courseRepo, ""); err != nil {
		t.Fatalf("seed.Catalog(): %v", err)
	}

	core.ParseEmailTemplates(logger, true)
	emailsvc.ResetSentMessages()
	mailSvc := emailsvc.NewConsoleServiceMock(conf, logger)

	usrSvc := user.NewService(accountRepo)
	sessionSvc := session.NewService(dummydb.NewSessionRepository(db), conf.Server.JWTExpirationDelta)

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	catalog.InitValidators(validate, translator)

	server := echoapi.NewServer(echoapi.ServerDeps{
		Conf:       conf,
		Logger:     logger,
		UserSvc:    usrSvc,
		CatalogSvc: catalog.NewService(courseRepo, usrSvc, mailSvc, logger),
		SessionSvc: sessionSvc,
		Validate:   validate,
		Translator: translator,
	})
	return &testApp{Server: server, conf: conf, courseRepo: courseRepo, sessionSvc: sessionSvc}
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

// do serves a request and decodes the JSON response into dest when it is not nil.
func (app *testApp) do(t *testing.T, method, path, token string, body []byte, dest interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req, rec := newAuthRequest(method, path, token, body)
	app.ServeHTTP(rec, req)
	if dest != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
			t.Fatalf("json.Unmarshal(%s): %v", rec.Body.String(), err)
		}
	}
	return rec
}

// openSession returns the token of a new anonymous session.
func (app *testApp) openSession(t *testing.T) string {
	t.Helper()
	var resp echoapi.SessionResponse
	rec := app.do(t, http.MethodPost, "/v1/sessions", "", nil, &resp)
	if rec.Code != http.StatusCreated || resp.Token == "" {
		t.Fatalf("openSession() failed: %d %s", rec.Code, rec.Body.String())
	}
	return resp.Token
}

// login returns the token of a new session logged in with the credentials.
func (app *testApp) login(t *testing.T, email, pwd string) string {
	t.Helper()
	var resp echoapi.SessionResponse
	body := marchallObj(t, user.LoginInput{Email: email, Password: pwd})
	rec := app.do(t, http.MethodPost, "/v1/sessions/login", "", body, &resp)
	if rec.Code != http.StatusOK || resp.Token == "" {
		t.Fatalf("login() failed: %d %s", rec.Code, rec.Body.String())
	}
	return resp.Token
}

func (app *testApp) studentToken(t *testing.T) string {
	return app.login(t, "student@example.com", "password")
}

func (app *testApp) adminToken(t *testing.T) string {
	return app.login(t, "admin@example.com", "admin")
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	if objs == nil {
		objs = []interface{}{}
	}
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList(): %v", err)
	}
	return data
}

func jsonUnmarshal(data []byte, dest interface{}) error {
	return json.Unmarshal(data, dest)
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		if rec.Body.Len() != 0 {
			t.Errorf("failed! data = %v; want no data", rec.Body.String())
		}
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
