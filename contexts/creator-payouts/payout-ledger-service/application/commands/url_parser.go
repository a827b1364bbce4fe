package commands

import (
	"net/url"
	"strings"

	domainerrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
)

type videoReference struct {
	VideoID      string
	CanonicalURL string
	Platform     string
	UsernameHint string
}

// parseVideoReference canonicalizes a short-video URL: it detects the
// platform from the host, extracts the external video id, and strips
// query and fragment noise. Share links without an embedded id (vm short
// codes) keep the code as the id.
func parseVideoReference(rawURL string) (videoReference, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Host == "" {
		return videoReference{}, domainerrors.ErrInvalidVideoURL
	}
	host := strings.ToLower(strings.TrimSpace(parsed.Host))
	segments := splitPathSegments(parsed.Path)

	switch {
	case strings.Contains(host, "tiktok.com"):
		return parseTikTokReference(host, segments)
	case strings.Contains(host, "instagram.com"):
		return parseInstagramReference(host, segments)
	case strings.Contains(host, "youtube.com"), strings.Contains(host, "youtu.be"):
		return parseYouTubeReference(host, segments)
	default:
		return videoReference{}, domainerrors.ErrUnsupportedPlatform
	}
}

func parseTikTokReference(host string, segments []string) (videoReference, error) {
	if strings.Contains(host, "vm.tiktok.com") && len(segments) >= 1 {
		return videoReference{
			VideoID:      segments[0],
			CanonicalURL: "https://vm.tiktok.com/" + segments[0],
			Platform:     "tiktok",
		}, nil
	}
	if len(segments) >= 3 && strings.HasPrefix(segments[0], "@") && segments[1] == "video" {
		return videoReference{
			VideoID:      segments[2],
			CanonicalURL: "https://www.tiktok.com/" + segments[0] + "/video/" + segments[2],
			Platform:     "tiktok",
			UsernameHint: strings.TrimPrefix(segments[0], "@"),
		}, nil
	}
	return videoReference{}, domainerrors.ErrInvalidVideoURL
}

func parseInstagramReference(_ string, segments []string) (videoReference, error) {
	if len(segments) >= 2 && (segments[0] == "reel" || segments[0] == "reels" || segments[0] == "p") {
		return videoReference{
			VideoID:      segments[1],
			CanonicalURL: "https://www.instagram.com/reel/" + segments[1],
			Platform:     "instagram",
		}, nil
	}
	return videoReference{}, domainerrors.ErrInvalidVideoURL
}

func parseYouTubeReference(host string, segments []string) (videoReference, error) {
	if strings.Contains(host, "youtu.be") && len(segments) >= 1 {
		return videoReference{
			VideoID:      segments[0],
			CanonicalURL: "https://www.youtube.com/shorts/" + segments[0],
			Platform:     "youtube",
		}, nil
	}
	if len(segments) >= 2 && segments[0] == "shorts" {
		return videoReference{
			VideoID:      segments[1],
			CanonicalURL: "https://www.youtube.com/shorts/" + segments[1],
			Platform:     "youtube",
		}, nil
	}
	return videoReference{}, domainerrors.ErrInvalidVideoURL
}

func splitPathSegments(rawPath string) []string {
	parts := strings.Split(strings.Trim(strings.TrimSpace(rawPath), "/"), "/")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
