package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/edulearn/core/session"
	"github.com/trezcool/edulearn/core/user"
	"github.com/trezcool/edulearn/core/view"
)

type sessionApi struct {
	auth       *authenticator
	userSvc    *user.Service
	sessionSvc *session.Service
	validate   *validator.Validate
}

func registerSessionAPI(
	g *echo.Group,
	sess echo.MiddlewareFunc,
	auth *authenticator,
	userSvc *user.Service,
	sessionSvc *session.Service,
	validate *validator.Validate,
) {
	api := sessionApi{
		auth:       auth,
		userSvc:    userSvc,
		sessionSvc: sessionSvc,
		validate:   validate,
	}

	sg := g.Group("/sessions")

	// un-authed endpoints
	sg.POST("", api.open)
	sg.POST("/login", api.login)

	// authed endpoints
	sg.POST("/logout", api.logout, sess)
	sg.GET("/me", api.me, sess)
}

type (
	SessionResponse struct {
		Token string     `json:"token"`
		User  *user.User `json:"user,omitempty"`
		Page  view.Page  `json:"page"`
	}

	LoginRequest struct {
		user.LoginInput
	}
)

func (api *sessionApi) respond(ctx echo.Context, code int, sess session.Session) error {
	token, err := api.auth.token(sess)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(code, SessionResponse{Token: token, User: sess.State.User, Page: sess.State.Page})
}

// Handlers

func (api *sessionApi) open(ctx echo.Context) error {
	sess, err := api.sessionSvc.Open()
	if err != nil {
		return errors.Wrap(err, "opening session")
	}
	return api.respond(ctx, http.StatusCreated, sess)
}

// login authenticates the credentials. The session of the request token is reused when
// there is a valid one, otherwise a new session is opened.
func (api *sessionApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, err := api.userSvc.Authenticate(data.Email, data.Password)
	if err != nil {
		return err
	}

	sess, err := api.requestSession(ctx)
	if err != nil {
		return err
	}
	sess.State = sess.State.Login(usr)
	if sess, err = api.sessionSvc.Save(sess); err != nil {
		return errors.Wrap(err, "saving session")
	}
	return api.respond(ctx, http.StatusOK, sess)
}

func (api *sessionApi) requestSession(ctx echo.Context) (session.Session, error) {
	if sess, ok := api.auth.lookup(ctx); ok {
		return sess, nil
	}
	sess, err := api.sessionSvc.Open()
	return sess, errors.Wrap(err, "opening session")
}

// logout revokes the request session and answers with a new anonymous one keeping the selection.
func (api *sessionApi) logout(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	if sess, err = api.sessionSvc.Logout(sess); err != nil {
		return errors.Wrap(err, "logging out")
	}
	return api.respond(ctx, http.StatusOK, sess)
}

func (api *sessionApi) me(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	if sess.State.User == nil {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, sess.State.User)
}
