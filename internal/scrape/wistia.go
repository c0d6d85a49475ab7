package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/veteranbv/ThinkiPlex/internal/thinkific"
)

// defaultWistiaBase is the public Wistia embed host; overridable on the
// Engine for tests.
const defaultWistiaBase = "https://fast.wistia.net"

// WistiaAsset is one downloadable rendition of a Wistia-hosted video.
type WistiaAsset struct {
	Type        string `json:"type"`
	URL         string `json:"url"`
	DisplayName string `json:"display_name"`
	Height      int    `json:"height"`
}

type wistiaMedia struct {
	Media struct {
		Name   string        `json:"name"`
		Assets []WistiaAsset `json:"assets"`
	} `json:"media"`
}

// qualityHeights maps the configured quality labels onto pixel heights.
var qualityHeights = map[string]int{
	"1080p": 1080,
	"720p":  720,
	"540p":  540,
	"360p":  360,
	"224p":  224,
}

// ChooseWistiaAsset picks the rendition matching the requested quality.
// "Original File" selects the original upload; otherwise the tallest
// rendition not exceeding the requested height wins, falling back to the
// smallest available one.
func ChooseWistiaAsset(assets []WistiaAsset, quality string) *WistiaAsset {
	if len(assets) == 0 {
		return nil
	}
	if quality == "Original File" {
		for i := range assets {
			if assets[i].Type == "original" {
				return &assets[i]
			}
		}
	}
	target, ok := qualityHeights[quality]
	if !ok {
		target = 720
	}

	var best *WistiaAsset
	var smallest *WistiaAsset
	for i := range assets {
		a := &assets[i]
		if a.URL == "" {
			continue
		}
		if smallest == nil || a.Height < smallest.Height {
			smallest = a
		}
		if a.Height <= target && (best == nil || a.Height > best.Height) {
			best = a
		}
	}
	if best != nil {
		return best
	}
	return smallest
}

// chooseProxyFile picks the videoproxy rendition matching the requested
// quality label, preferring an exact label match, then the tallest labeled
// rendition not exceeding it, then the first file with a URL.
func chooseProxyFile(files []thinkific.VideoFile, quality string) *thinkific.VideoFile {
	var first *thinkific.VideoFile
	for i := range files {
		f := &files[i]
		if f.URL == "" {
			continue
		}
		if f.Label == quality {
			return f
		}
		if first == nil {
			first = f
		}
	}

	target, ok := qualityHeights[quality]
	if !ok {
		return first
	}
	var best *thinkific.VideoFile
	for i := range files {
		f := &files[i]
		if f.URL == "" {
			continue
		}
		if h, ok := qualityHeights[f.Label]; ok && h <= target && (best == nil || h > qualityHeights[best.Label]) {
			best = f
		}
	}
	if best != nil {
		return best
	}
	return first
}

// wistiaMediaInfo fetches the media descriptor for a Wistia id.
func (e *Engine) wistiaMediaInfo(ctx context.Context, id string) (*wistiaMedia, error) {
	rc, err := e.client.Fetch(ctx, e.wistiaBase+"/embed/medias/"+id+".json")
	if err != nil {
		return nil, fmt.Errorf("fetching wistia media %s: %w", id, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	var m wistiaMedia
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding wistia media %s: %w", id, err)
	}
	return &m, nil
}
