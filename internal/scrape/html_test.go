package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleBody = `
<p>Watch the intro:</p>
<iframe src="https://fast.wistia.net/embed/iframe/abc123def456"></iframe>
<video src="https://cdn.example.com/videoproxy/signed-token/lecture1.mp4"></video>
<a href="https://cdn.example.com/media/episode.mp3?token=xyz">audio</a>
<a href="https://cdn.example.com/media/episode.mp3?token=xyz">same audio again</a>
<script src="https://fast.wistia.com/embed/medias/abc123def456.jsonp"></script>
`

func TestFindVideoProxyURLs(t *testing.T) {
	urls := FindVideoProxyURLs(sampleBody)
	assert.Equal(t, []string{"https://cdn.example.com/videoproxy/signed-token/lecture1.mp4"}, urls)
}

func TestFindMP3URLs(t *testing.T) {
	urls := FindMP3URLs(sampleBody)
	assert.Equal(t, []string{"https://cdn.example.com/media/episode.mp3?token=xyz"}, urls)
}

func TestFindWistiaIDs(t *testing.T) {
	ids := FindWistiaIDs(sampleBody)
	assert.Equal(t, []string{"abc123def456"}, ids)
}

func TestFindersOnPlainBody(t *testing.T) {
	body := "<p>Just text, no media.</p>"
	assert.Empty(t, FindVideoProxyURLs(body))
	assert.Empty(t, FindMP3URLs(body))
	assert.Empty(t, FindWistiaIDs(body))
}

func TestLooksLikeDocument(t *testing.T) {
	assert.True(t, looksLikeDocument("https://cdn.example.com/files/handout.pdf"))
	assert.True(t, looksLikeDocument("https://cdn.example.com/files/handout.PDF?token=1"))
	assert.True(t, looksLikeDocument("https://cdn.example.com/documents/12345"))
	assert.False(t, looksLikeDocument("https://player.vimeo.com/video/12345"))
	assert.False(t, looksLikeDocument("https://example.com/embed"))
}
