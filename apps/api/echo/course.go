package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/edulearn/core/catalog"
)

type courseApi struct {
	svc      *catalog.Service
	validate *validator.Validate
}

func registerCourseAPI(g *echo.Group, sess echo.MiddlewareFunc, svc *catalog.Service, validate *validator.Validate) {
	api := courseApi{
		svc:      svc,
		validate: validate,
	}

	cg := g.Group("/courses")

	// un-authed endpoints
	cg.GET("", api.query)
	cg.GET("/stats", api.stats)
	cg.GET("/:id", api.retrieve)

	// admin endpoints
	admin := adminMiddleware()
	cg.POST("", api.create, sess, admin)
	cg.PUT("/:id", api.update, sess, admin)
	cg.DELETE("/:id", api.destroy, sess, admin)
}

// Handlers

func (api *courseApi) query(ctx echo.Context) error {
	filter := new(catalog.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []catalog.Course{})
	}
	filter.Clean()
	ordering := new(Ordering)
	ordering.Bind(ctx)

	courses, err := api.svc.Query(*filter, ordering.Orderings)
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	if courses == nil {
		courses = []catalog.Course{}
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *courseApi) stats(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Stats())
}

func (api *courseApi) retrieve(ctx echo.Context) error {
	course, err := api.svc.Select(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "selecting course")
	}
	return ctx.JSON(http.StatusOK, course)
}

func (api *courseApi) create(ctx echo.Context) error {
	var data catalog.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	course, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating course")
	}
	return ctx.JSON(http.StatusCreated, course)
}

func (api *courseApi) update(ctx echo.Context) error {
	var data catalog.UpdateCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateCourse")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	course, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating course")
	}
	return ctx.JSON(http.StatusOK, course)
}

func (api *courseApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting course")
	}
	return ctx.NoContent(http.StatusNoContent)
}
