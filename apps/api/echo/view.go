package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/edulearn/core/catalog"
	"github.com/trezcool/edulearn/core/session"
	"github.com/trezcool/edulearn/core/view"
)

type viewApi struct {
	catalogSvc *catalog.Service
	sessionSvc *session.Service
}

func registerViewAPI(g *echo.Group, sess echo.MiddlewareFunc, catalogSvc *catalog.Service, sessionSvc *session.Service) {
	api := viewApi{
		catalogSvc: catalogSvc,
		sessionSvc: sessionSvc,
	}

	vg := g.Group("/view", sess)
	vg.GET("", api.resolve)
	vg.POST("/navigate", api.navigate)
	vg.POST("/course", api.selectCourse)
	vg.POST("/topic", api.selectTopic)
}

type (
	NavigateRequest struct {
		Page view.Page `json:"page"`
	}

	SelectRequest struct {
		ID string `json:"id"`
	}
)

func (api *viewApi) render(ctx echo.Context, state view.State) error {
	return ctx.JSON(http.StatusOK, view.Resolve(state, api.catalogSvc.QueryAll()))
}

// save stores the new state of the context session and renders it.
func (api *viewApi) save(ctx echo.Context, sess session.Session, state view.State) error {
	sess.State = state
	sess, err := api.sessionSvc.Save(sess)
	if err != nil {
		return errors.Wrap(err, "saving session")
	}
	return api.render(ctx, sess.State)
}

// Handlers

func (api *viewApi) resolve(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	return api.render(ctx, sess.State)
}

func (api *viewApi) navigate(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	var data NavigateRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NavigateRequest")
	}
	return api.save(ctx, sess, sess.State.Navigate(data.Page))
}

func (api *viewApi) selectCourse(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	var data SelectRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SelectRequest")
	}

	course, err := api.catalogSvc.Select(data.ID)
	if err != nil {
		return errors.Wrap(err, "selecting course")
	}
	return api.save(ctx, sess, sess.State.SelectCourse(course))
}

func (api *viewApi) selectTopic(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	var data SelectRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SelectRequest")
	}
	if sess.State.Course == nil {
		return errors.Wrap(catalog.ErrNotFound, "no course selected")
	}

	topic, err := api.catalogSvc.SelectTopic(*sess.State.Course, data.ID)
	if err != nil {
		return errors.Wrap(err, "selecting topic")
	}
	return api.save(ctx, sess, sess.State.SelectTopic(topic))
}
