package scrape

import "regexp"

// Embedded-media patterns scanned for in html item bodies. The three are
// independent; a body can match any number of them.
var (
	videoProxyRe = regexp.MustCompile(`https?://[^\s"'<>]+/videoproxy/[^\s"'<>]+`)
	mp3Re        = regexp.MustCompile(`https?://[^\s"'<>]+\.mp3(?:\?[^\s"'<>]*)?`)
	wistiaRe     = regexp.MustCompile(`fast\.wistia\.(?:net|com)/embed/(?:iframe|medias)/([a-z0-9]{8,12})`)
)

// FindVideoProxyURLs returns the distinct signed proxy video URLs in body.
func FindVideoProxyURLs(body string) []string {
	return dedup(videoProxyRe.FindAllString(body, -1))
}

// FindMP3URLs returns the distinct direct mp3 URLs in body.
func FindMP3URLs(body string) []string {
	return dedup(mp3Re.FindAllString(body, -1))
}

// FindWistiaIDs returns the distinct Wistia media ids embedded in body.
func FindWistiaIDs(body string) []string {
	var ids []string
	for _, m := range wistiaRe.FindAllStringSubmatch(body, -1) {
		ids = append(ids, m[1])
	}
	return dedup(ids)
}

func dedup(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
