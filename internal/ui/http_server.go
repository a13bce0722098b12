package ui

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"litecene/internal/common"
	"litecene/internal/search"
	"litecene/internal/search/query_language"
)

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(
		fiber.Map{
			"error": message,
		},
	)
}

func NewHttpApp(ctx context.Context, app *Litecene) *fiber.App {
	httpApp := fiber.New(
		fiber.Config{
			DisableStartupMessage: true,
		},
	)
	go func() {
		<-ctx.Done()
		_ = httpApp.Shutdown()
	}()

	c := cors.ConfigDefault
	c.ExposeHeaders = "*"
	httpApp.Use(cors.New(c))
	httpApp.Use(compress.New(compress.Config{Level: compress.LevelBestCompression}))

	api := httpApp.Group("/api")
	api.Post(
		"/parse", func(c *fiber.Ctx) error {
			type ParseRequest struct {
				Query string `json:"query"`
			}

			var req ParseRequest
			if err := c.BodyParser(&req); err != nil {
				return badRequest(c, "Invalid request body")
			}

			q, err := app.Parse(req.Query)
			if err != nil {
				app.Logger.Warn("could not parse query", zap.Error(err))
				return badRequest(c, err.Error())
			}

			return c.JSON(
				fiber.Map{
					"query":            req.Query,
					"canonical":        q.String(),
					"tree":             query_language.Dump(q),
					"fully_searchable": search.IsFullySearchable(q),
					"required_tokens":  search.RequiredTokens(q),
				},
			)
		},
	)
	api.Post(
		"/compile", func(c *fiber.Ctx) error {
			type CompileRequest struct {
				Query   string `json:"query"`
				Field   string `json:"field"`
				Indexed *bool  `json:"indexed"`
				Dialect string `json:"dialect"`
			}

			var req CompileRequest
			if err := c.BodyParser(&req); err != nil {
				return badRequest(c, "Invalid request body")
			}

			field, indexed, compiler := app.Cfg.Field, app.Cfg.Indexed, app.Compiler
			if req.Field != "" {
				field = req.Field
			}
			if req.Indexed != nil {
				indexed = *req.Indexed
			}
			if req.Dialect != "" {
				dialect, err := search.DialectByName(req.Dialect)
				if err != nil {
					return badRequest(c, err.Error())
				}
				compiler = search.NewSQLCompiler(dialect)
			}

			q, err := app.Parse(req.Query)
			if err != nil {
				app.Logger.Warn("could not parse query", zap.Error(err))
				return badRequest(c, err.Error())
			}

			return c.JSON(fiber.Map{"predicate": compiler.Compile(q, field, indexed)})
		},
	)
	api.Post(
		"/match", func(c *fiber.Ctx) error {
			type MatchRequest struct {
				Query     string        `json:"query"`
				Documents common.Corpus `json:"documents"`
				Backend   string        `json:"backend"`
			}

			var req MatchRequest
			if err := c.BodyParser(&req); err != nil {
				return badRequest(c, "Invalid request body")
			}

			ids, err := app.Match(c.UserContext(), req.Backend, req.Query, req.Documents)
			if err != nil {
				app.Logger.Warn("match failed", zap.Error(err))
				return badRequest(c, err.Error())
			}

			return c.JSON(fiber.Map{"ids": ids})
		},
	)

	return httpApp
}
