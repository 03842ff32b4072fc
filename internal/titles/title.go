// Package titles derives display titles from media file names.
package titles

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNoTitle is returned when a file name has no usable words.
var ErrNoTitle = errors.New("no title in file name")

var (
	bracketPattern = regexp.MustCompile(`\[[^\]]*\]|\{[^}]*\}`)
	yearPattern    = regexp.MustCompile(`^(19|20)\d{2}$`)
)

// releaseTags are scene naming tokens that never belong to a title.
var releaseTags = map[string]struct{}{
	"480p": {}, "576p": {}, "720p": {}, "1080p": {}, "2160p": {}, "4k": {},
	"bluray": {}, "bdrip": {}, "brrip": {}, "dvdrip": {}, "webrip": {}, "web": {}, "webdl": {}, "remux": {},
	"x264": {}, "x265": {}, "h264": {}, "h265": {}, "hevc": {}, "av1": {},
	"hdr": {}, "dts": {}, "aac": {}, "ac3": {}, "proper": {}, "repack": {},
}

// FromPath builds a title from a file path such as
// "/media/a.river.runs.through.it.1992.1080p.mkv". The extension, bracketed
// segments, the release year and everything after it, and release tags are
// dropped; the remaining words are title cased.
func FromPath(sourcePath string) (string, error) {
	base := filepath.Base(strings.TrimSpace(sourcePath))
	if base == "." || base == string(filepath.Separator) {
		return "", ErrNoTitle
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = bracketPattern.ReplaceAllString(base, " ")

	words := make([]string, 0, 8)
	for i, word := range splitWords(base) {
		lower := strings.ToLower(word)
		if i > 0 && yearPattern.MatchString(lower) {
			break
		}
		if _, tag := releaseTags[lower]; tag {
			break
		}
		words = append(words, word)
	}
	if len(words) == 0 {
		return "", ErrNoTitle
	}
	return cases.Title(language.Und).String(strings.Join(words, " ")), nil
}

func splitWords(value string) []string {
	var (
		words   []string
		current strings.Builder
	)
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	for _, r := range value {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '\'' || r == '&':
			current.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return words
}
