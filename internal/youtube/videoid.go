package youtube

import (
	"net/url"
	"strings"
)

var watchHosts = map[string]struct{}{
	"youtube.com":       {},
	"www.youtube.com":   {},
	"m.youtube.com":     {},
	"music.youtube.com": {},
}

var idPathPrefixes = []string{"/embed/", "/shorts/", "/live/", "/v/"}

// ExtractVideoID returns the video id embedded in a pasted YouTube URL. Input that is not
// a recognised YouTube URL is returned trimmed and otherwise untouched, so bare ids pass
// straight through to the provider.
func ExtractVideoID(input string) string {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return ""
	}

	candidate := raw
	if !strings.Contains(candidate, "://") && looksLikeHostPath(candidate) {
		candidate = "https://" + candidate
	}

	u, err := url.Parse(candidate)
	if err != nil || u.Host == "" {
		return raw
	}

	host := strings.ToLower(u.Hostname())
	if host == "youtu.be" || host == "www.youtu.be" {
		if id := firstSegment(strings.TrimPrefix(u.Path, "/")); id != "" {
			return id
		}
		return raw
	}

	if _, ok := watchHosts[host]; !ok {
		return raw
	}

	if v := strings.TrimSpace(u.Query().Get("v")); v != "" {
		return v
	}
	for _, prefix := range idPathPrefixes {
		if rest, ok := strings.CutPrefix(u.Path, prefix); ok {
			if id := firstSegment(rest); id != "" {
				return id
			}
		}
	}
	return raw
}

func looksLikeHostPath(s string) bool {
	host, _, _ := strings.Cut(s, "/")
	host = strings.ToLower(host)
	if host == "youtu.be" || host == "www.youtu.be" {
		return true
	}
	_, ok := watchHosts[host]
	return ok
}

func firstSegment(p string) string {
	seg, _, _ := strings.Cut(p, "/")
	return strings.TrimSpace(seg)
}
