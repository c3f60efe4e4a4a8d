package kotoba

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/kotoba/content"
	"github.com/eringen/kotoba/kana"
)

// handleRoot redirects to the reader's preferred locale, or the default.
func (a *App) handleRoot(c echo.Context) error {
	locale := preferredLocale(c)
	return c.Redirect(http.StatusSeeOther, "/"+string(locale)+"/")
}

// handleSetLocale stores the chosen locale in the session and redirects
// to that locale's home page.
func (a *App) handleSetLocale(c echo.Context) error {
	locale, ok := content.ParseLocale(c.FormValue("locale"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported locale")
	}
	if err := setPreferredLocale(c, locale); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/"+string(locale)+"/")
}

func (a *App) handleHome(c echo.Context) error {
	locale, ok := content.ParseLocale(c.Param("locale"))
	if !ok {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	}
	posts, err := a.Cache.ListPosts(locale)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(locale, posts, a.Config.URL))
}

func (a *App) handlePost(c echo.Context) error {
	locale, ok := content.ParseLocale(c.Param("locale"))
	if !ok {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	}
	post, err := a.Cache.GetPost(c.Param("slug"), locale)
	if err != nil {
		return err
	}
	if post == nil {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	}
	siblings, err := a.Cache.ListPosts(post.Locale)
	if err != nil {
		return err
	}
	headings := content.ExtractHeadings(post.Body)
	related := RelatedPosts(*post, siblings, 3)
	return Render(c, a.Views.Post(*post, headings, related, a.Config.URL))
}

func (a *App) handleFeed(c echo.Context) error {
	locale, ok := content.ParseLocale(c.Param("locale"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	posts, err := a.Cache.ListPosts(locale)
	if err != nil {
		return err
	}
	return a.renderRSS(c, locale, posts)
}

func (a *App) handleSitemap(c echo.Context) error {
	byLocale := make(map[content.Locale][]content.Post, len(content.Locales))
	for _, locale := range content.Locales {
		posts, err := a.Cache.ListPosts(locale)
		if err != nil {
			return err
		}
		byLocale[locale] = posts
	}
	return a.renderSitemap(c, byLocale)
}

func (a *App) handleKanaPage(c echo.Context) error {
	locale, ok := content.ParseLocale(c.Param("locale"))
	if !ok {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	}
	return Render(c, a.Views.KanaChart(locale))
}

// handleKana serves the kana syllabary dataset consumed by the
// flashcard UI.
func (a *App) handleKana(c echo.Context) error {
	script := c.QueryParam("script")
	if script == "" {
		return c.JSON(http.StatusOK, kana.Chart())
	}
	rows, ok := kana.Rows(script)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown script")
	}
	return c.JSON(http.StatusOK, rows)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.log.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("server error")
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
