package source

import (
	"html"
	"regexp"
	"strings"

	"github.com/MrSnakeDoc/devhub/internal/models"
)

const mavenMirrorID = "devhub"

var (
	mavenMirrorsRe  = regexp.MustCompile(`(?s)<mirrors>(.*?)</mirrors>`)
	mavenMirrorsTag = regexp.MustCompile(`<mirrors>`)
	mavenURLRe      = regexp.MustCompile(`(?s)<url>\s*(.*?)\s*</url>`)
	mavenOwnRe      = regexp.MustCompile(`(?s)[ \t]*<mirror>\s*<id>` + mavenMirrorID + `</id>.*?</mirror>[ \t]*\n?`)
	mavenSettingsRe = regexp.MustCompile(`</settings>`)
	xmlCommentRe    = regexp.MustCompile(`(?s)<!--.*?-->`)
)

const mavenTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<settings xmlns="http://maven.apache.org/SETTINGS/1.0.0"
          xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
          xsi:schemaLocation="http://maven.apache.org/SETTINGS/1.0.0
                              http://maven.apache.org/xsd/settings-1.0.0.xsd">
  <mirrors>
%s  </mirrors>
</settings>
`

// NewMaven manages the devhub <mirror> of ~/.m2/settings.xml. Other mirrors
// and settings are left as they are.
func NewMaven(env Env) Manager {
	return &fileBackend{
		id:     "maven",
		path:   env.path("maven", env.homePath(".m2", "settings.xml")),
		env:    env,
		format: mavenFormat{},
	}
}

type mavenFormat struct{}

func (mavenFormat) extract(content []byte) (string, bool, error) {
	block := mavenMirrorsRe.FindSubmatch(maskXMLComments(content))
	if block == nil {
		return "", false, nil
	}
	url, ok := firstGroup(mavenURLRe, block[1])
	if !ok {
		return "", false, nil
	}
	return html.UnescapeString(url), true, nil
}

func (mavenFormat) render(existing []byte, m models.Mirror) ([]byte, error) {
	mirror := mavenMirror(m)
	s := string(existing)

	if strings.TrimSpace(s) == "" {
		return []byte(strings.Replace(mavenTemplate, "%s", mirror, 1)), nil
	}

	// Offsets are looked up in the masked copy so that commented out
	// examples are never edited.
	masked := string(maskXMLComments(existing))

	if mavenMirrorsRe.MatchString(masked) {
		locs := mavenOwnRe.FindAllStringIndex(masked, -1)
		for i := len(locs) - 1; i >= 0; i-- {
			s = s[:locs[i][0]] + s[locs[i][1]:]
			masked = masked[:locs[i][0]] + masked[locs[i][1]:]
		}
		// Maven uses the first matching mirror, so ours goes first.
		loc := mavenMirrorsTag.FindStringIndex(masked)
		return []byte(insertAt(s, loc[1], strings.TrimSuffix(mirror, "\n"))), nil
	}

	if loc := mavenSettingsRe.FindStringIndex(masked); loc != nil {
		block := "  <mirrors>\n" + mirror + "  </mirrors>\n"
		return []byte(s[:loc[0]] + block + s[loc[0]:]), nil
	}

	return []byte(strings.Replace(mavenTemplate, "%s", mirror, 1)), nil
}

// maskXMLComments blanks every comment of content, keeping offsets and line
// breaks.
func maskXMLComments(content []byte) []byte {
	return xmlCommentRe.ReplaceAllFunc(content, func(c []byte) []byte {
		out := make([]byte, len(c))
		for i, b := range c {
			if b == '\n' {
				out[i] = b
			} else {
				out[i] = ' '
			}
		}
		return out
	})
}

func mavenMirror(m models.Mirror) string {
	return "    <mirror>\n" +
		"      <id>" + mavenMirrorID + "</id>\n" +
		"      <name>" + html.EscapeString(m.Name) + " Mirror</name>\n" +
		"      <url>" + html.EscapeString(m.URL) + "</url>\n" +
		"      <mirrorOf>central</mirrorOf>\n" +
		"    </mirror>\n"
}
