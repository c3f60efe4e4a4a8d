package kotoba

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/kotoba/content"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XHTMLNS string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string             `xml:"loc"`
	LastMod    string             `xml:"lastmod,omitempty"`
	Alternates []sitemapAlternate `xml:"xhtml:link,omitempty"`
}

// sitemapAlternate is an xhtml:link hreflang entry pointing to the same
// post in another locale.
type sitemapAlternate struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

func (a *App) renderSitemap(c echo.Context, byLocale map[content.Locale][]content.Post) error {
	base := a.Config.URL
	urls := []sitemapURL{{Loc: BuildURL(base)}}
	for _, locale := range content.Locales {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, string(locale))})
	}

	// Index which locales carry each slug so posts can cross-reference
	// their translations.
	slugLocales := make(map[string][]content.Locale)
	for _, locale := range content.Locales {
		for _, p := range byLocale[locale] {
			slugLocales[p.Slug] = append(slugLocales[p.Slug], locale)
		}
	}

	for _, locale := range content.Locales {
		for _, p := range byLocale[locale] {
			entry := sitemapURL{
				Loc:     PostURL(base, p),
				LastMod: p.LastModified().Format(time.DateOnly),
			}
			if locales := slugLocales[p.Slug]; len(locales) > 1 {
				for _, alt := range locales {
					entry.Alternates = append(entry.Alternates, sitemapAlternate{
						Rel:      "alternate",
						Hreflang: string(alt),
						Href:     BuildURL(base, string(alt), "blog", p.Slug),
					})
				}
			}
			urls = append(urls, entry)
		}
	}

	sitemap := sitemapURLSet{
		XMLNS:   "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTMLNS: "http://www.w3.org/1999/xhtml",
		URLs:    urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
