package folio

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
)

const defaultRecent = 5

var errNotFound = echo.NewHTTPError(http.StatusNotFound, "not found")

// catalog returns the current catalog, loading it on first use.
func (a *App) catalog(c echo.Context) (*content.Catalog, error) {
	cat, err := a.Provider.Catalog(c.Request().Context())
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "catalog unavailable").SetInternal(err)
	}
	return cat, nil
}

func (a *App) handleListPosts(c echo.Context) error {
	limit, err := intParam(c, "limit", -1)
	if err != nil {
		return err
	}

	search := c.QueryParam("search")
	if search != "" && !a.searchLimiter.Allow(c.RealIP()) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many searches, try again later")
	}

	cat, err := a.catalog(c)
	if err != nil {
		return err
	}

	posts := cat.Search(search)
	if tag := c.QueryParam("tag"); tag != "" {
		tagged := posts[:0]
		for _, p := range posts {
			if p.HasTag(tag) {
				tagged = append(tagged, p)
			}
		}
		posts = tagged
	}
	total := len(posts)
	if limit >= 0 && limit < len(posts) {
		posts = posts[:limit]
	}
	return Render(c, PostList{Posts: a.summaries(posts), Total: total})
}

func (a *App) handlePost(c echo.Context) error {
	cat, err := a.catalog(c)
	if err != nil {
		return err
	}
	slug, err := url.PathUnescape(c.Param("slug"))
	if err != nil {
		return errNotFound
	}
	post, ok := cat.GetPost(slug)
	if !ok {
		return errNotFound
	}
	return Render(c, a.detail(cat, post))
}

func (a *App) handleTags(c echo.Context) error {
	cat, err := a.catalog(c)
	if err != nil {
		return err
	}
	return Render(c, map[string][]string{"tags": cat.Tags()})
}

func (a *App) handleRecent(c echo.Context) error {
	n, err := intParam(c, "n", defaultRecent)
	if err != nil {
		return err
	}
	cat, err := a.catalog(c)
	if err != nil {
		return err
	}
	return Render(c, map[string][]PostSummary{"posts": a.summaries(cat.Recent(n))})
}

func (a *App) handleHealth(c echo.Context) error {
	cat, ok := a.Provider.Loaded()
	if !ok {
		return RenderStatus(c, http.StatusServiceUnavailable, Health{
			Status: "unavailable",
			Mode:   a.Provider.Mode(),
		})
	}
	loadedAt := a.Provider.LoadedAt()
	return Render(c, Health{
		Status:    "ok",
		Mode:      cat.Mode(),
		Documents: cat.Len(),
		Warnings:  len(cat.Warnings()),
		LoadedAt:  &loadedAt,
	})
}

// intParam parses a non-negative integer query parameter, returning fallback
// when it is absent.
func intParam(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s %q", name, raw))
	}
	return n, nil
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
		if he.Internal != nil {
			err = he.Internal
		}
	}
	if code >= 500 {
		a.logger.Error("server error", "path", c.Request().URL.Path, "status", code, "error", err)
	}

	c.Response().Header().Set("Cache-Control", "no-store")
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = RenderError(c, code, msg)
}
