package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/trezcool/edulearn/apps/api/echo"
	"github.com/trezcool/edulearn/core/user"
	"github.com/trezcool/edulearn/core/view"
)

var (
	student = user.User{ID: "1", Name: "John Doe", Email: "student@example.com", Role: user.RoleStudent}
	admin   = user.User{ID: "2", Name: "Admin User", Email: "admin@example.com", Role: user.RoleAdmin}
)

func Test_home(t *testing.T) {
	app := setup(t)
	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to EduLearn API!", rec.Body.String())
}

func Test_sessionApi_open(t *testing.T) {
	app := setup(t)

	var resp echoapi.SessionResponse
	rec := app.do(t, http.MethodPost, "/v1/sessions", "", nil, &resp)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, resp.Token)
	assert.Nil(t, resp.User)
	assert.Equal(t, view.PageHome, resp.Page)
}

func Test_sessionApi_login(t *testing.T) {
	app := setup(t)
	invalid := marchallObj(t, httpErr{Error: "Invalid email or password"})

	type extraTest struct {
		user user.User
		page view.Page
	}
	tests := []httpTest{
		{
			name: "required fields", wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"email": "this field is required", "password": "this field is required"}),
		},
		{
			name: "wrong password", body: marchallObj(t, user.LoginInput{Email: "student@example.com", Password: "admin"}),
			wantCode: http.StatusBadRequest, wantData: invalid,
		},
		{
			name: "unknown email", body: marchallObj(t, user.LoginInput{Email: "lol@example.com", Password: "password"}),
			wantCode: http.StatusBadRequest, wantData: invalid,
		},
		{
			name: "student", body: marchallObj(t, user.LoginInput{Email: "student@example.com", Password: "password"}),
			wantCode: http.StatusOK, extra: extraTest{user: student, page: view.PageStudentDashboard},
		},
		{
			name: "admin", body: marchallObj(t, user.LoginInput{Email: " ADMIN@example.com ", Password: "admin"}),
			wantCode: http.StatusOK, extra: extraTest{user: admin, page: view.PageAdminDashboard},
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/sessions/login"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)

			// cannot guess the token.. check the rest
			if extra, ok := tt.extra.(extraTest); ok {
				require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
				var resp echoapi.SessionResponse
				require.NoError(t, jsonUnmarshal(rec.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Token)
				assert.Equal(t, &extra.user, resp.User)
				assert.Equal(t, extra.page, resp.Page)
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_sessionApi_loginKeepsSession(t *testing.T) {
	app := setup(t)
	token := app.openSession(t)

	// select a course while anonymous
	rec := app.do(t, http.MethodPost, "/v1/view/course", token, marchallObj(t, echoapi.SelectRequest{ID: "2"}), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp echoapi.SessionResponse
	body := marchallObj(t, user.LoginInput{Email: "student@example.com", Password: "password"})
	rec = app.do(t, http.MethodPost, "/v1/sessions/login", token, body, &resp)
	require.Equal(t, http.StatusOK, rec.Code)

	var v view.View
	rec = app.do(t, http.MethodPost, "/v1/view/navigate", resp.Token, marchallObj(t, echoapi.NavigateRequest{Page: view.PageCourseDetail}), &v)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, v.Detail)
	assert.Equal(t, "2", v.Detail.Course.ID)
	assert.Equal(t, &student, v.User)

	// the anonymous token addresses the same, now logged in, session
	rec = app.do(t, http.MethodGet, "/v1/sessions/me", token, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func Test_sessionApi_me(t *testing.T) {
	app := setup(t)

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "invalid token", token: "lol", wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, httpErr{Error: "invalid or expired jwt"}),
		},
		{name: "anonymous", token: app.openSession(t), wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})},
		{name: "student", token: app.studentToken(t), wantCode: http.StatusOK, wantData: marchallObj(t, student)},
		{name: "admin", token: app.adminToken(t), wantCode: http.StatusOK, wantData: marchallObj(t, admin)},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		tt.path = "/v1/sessions/me"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_sessionApi_logout(t *testing.T) {
	app := setup(t)
	token := app.studentToken(t)
	expired := marchallObj(t, httpErr{Error: "session expired"})

	rec := app.do(t, http.MethodPost, "/v1/view/course", token, selectID("2"), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "logout", token: token, wantCode: http.StatusOK},
		{name: "token revoked", token: token, wantCode: http.StatusUnauthorized, wantData: expired},
	}
	var anon echoapi.SessionResponse
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/sessions/logout"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)

			// cannot guess the new token.. check the rest
			if tt.wantCode == http.StatusOK {
				require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
				require.NoError(t, jsonUnmarshal(rec.Body.Bytes(), &anon))
				assert.NotEmpty(t, anon.Token)
				assert.NotEqual(t, token, anon.Token)
				assert.Nil(t, anon.User)
				assert.Equal(t, view.PageHome, anon.Page)
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("revoked token cannot be used", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/v1/view", token, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		ok, err := jsonBytesEqual(rec.Body.Bytes(), expired)
		require.NoError(t, err)
		assert.True(t, ok, rec.Body.String())
	})

	t.Run("new session keeps the selection", func(t *testing.T) {
		require.NotEmpty(t, anon.Token)
		rec := app.do(t, http.MethodGet, "/v1/sessions/me", anon.Token, nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var v view.View
		rec = app.do(t, http.MethodPost, "/v1/view/navigate", anon.Token, navigate(view.PageCourseDetail), &v)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.NotNil(t, v.Detail)
		assert.Equal(t, "2", v.Detail.Course.ID)
		assert.Nil(t, v.User)
	})
}
