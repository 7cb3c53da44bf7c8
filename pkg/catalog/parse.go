package catalog

import (
	"bufio"
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/geosat-report/internal/common"
	"github.com/dtnitsch/geosat-report/models"
	"github.com/go-shiori/go-readability"
)

// The search result list sits in the second row of the first content table.
const (
	resultLinksSelector = "body > div:nth-of-type(1) > div:nth-of-type(1) > div > table > tbody > tr:nth-of-type(2) > td > ul > li > a"
	looseLinksSelector  = "table tr td ul li a"
)

// ParseLinks extracts detail page links from a search result page. Links are
// made absolute against pageURL and duplicates are dropped.
func ParseLinks(pageURL string, html []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	sel := doc.Find(resultLinksSelector)
	if sel.Length() == 0 {
		sel = doc.Find(looseLinksSelector)
	}

	seen := make(map[string]struct{})
	var links []string
	sel.Each(func(i int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		abs, err := common.ResolveURL(pageURL, href)
		if err != nil || abs == "" {
			return
		}
		if _, dup := seen[abs]; dup {
			return
		}
		seen[abs] = struct{}{}
		links = append(links, abs)
	})

	return links, nil
}

// ParsePage extracts the raw fields of one satellite detail page. Name,
// mission type, launch date, lifetime and background are required; the
// rest are left empty when absent.
func ParsePage(link string, html []byte) (models.RawFields, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return models.RawFields{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	firstLaunch := doc.Find("#satlist tr").Eq(1).Find("td")

	raw := models.RawFields{
		Link:        link,
		Name:        normalizeText(firstLaunch.Eq(0).Text()),
		MissionType: normalizeText(doc.Find("#sdtyp").First().Text()),
		LaunchDate:  normalizeText(firstLaunch.Eq(2).Text()),
		Lifetime:    normalizeText(doc.Find("#sdlif").First().Text()),
		MassText:    normalizeText(doc.Find("#sdmas").First().Text()),
		OrbitType:   normalizeText(doc.Find("#sdorb").First().Text()),
		Background:  normalizeText(doc.Find("div#satdescription").First().Text()),
	}

	if src, ok := doc.Find("#contimg > img").First().Attr("src"); ok {
		if abs, err := common.ResolveURL(link, src); err == nil {
			raw.ImageURL = abs
		}
	}

	if raw.Background == "" {
		raw.Background = readableText(link, html)
	}

	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", raw.Name},
		{"mission type", raw.MissionType},
		{"launch date", raw.LaunchDate},
		{"lifetime", raw.Lifetime},
		{"background", raw.Background},
	} {
		if f.value == "" {
			return raw, fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}

	return raw, nil
}

// readableText falls back to go-readability for pages without a
// description block.
func readableText(link string, html []byte) string {
	parsedURL, err := url.Parse(link)
	if err != nil {
		return ""
	}
	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(bytes.NewReader(html), parsedURL)
	if err != nil || article.Content == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return ""
	}
	return normalizeText(doc.Text())
}

// normalizeText trims every line and joins the non-empty ones with a space.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
