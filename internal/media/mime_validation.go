package media

import (
	"fmt"
	"mime"
	"path"
	"sort"
	"strings"

	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
)

type mimeGroup string

const (
	mimeGroupImages mimeGroup = "images"
	mimeGroupVideos mimeGroup = "videos"
	mimeGroupDocs   mimeGroup = "documents"
)

var mimeGroupTypes = map[mimeGroup][]string{
	mimeGroupImages: {"image/png", "image/jpeg", "image/webp", "image/gif", "image/svg+xml"},
	mimeGroupVideos: {"video/mp4", "video/webm"},
	mimeGroupDocs:   {"application/pdf"},
}

var allowedMimeGroupsByType = map[enums.MediaType][]mimeGroup{
	enums.MediaTypeImage: {mimeGroupImages},
	enums.MediaTypeVideo: {mimeGroupVideos},
	enums.MediaTypeDoc:   {mimeGroupDocs, mimeGroupImages},
}

var mimeTypesByType = buildMimeTypesByType()

func buildMimeTypesByType() map[enums.MediaType][]string {
	result := make(map[enums.MediaType][]string, len(allowedMimeGroupsByType))
	for mediaType, groups := range allowedMimeGroupsByType {
		set := make(map[string]struct{})
		for _, group := range groups {
			for _, value := range mimeGroupTypes[group] {
				set[value] = struct{}{}
			}
		}
		list := make([]string, 0, len(set))
		for value := range set {
			list = append(list, value)
		}
		sort.Strings(list)
		result[mediaType] = list
	}
	return result
}

// resolveMimeType returns the declared mime type or, when empty, one guessed
// from the path extension. The result must be allowed for the media type.
func resolveMimeType(mediaType enums.MediaType, declared, assetPath string) (string, error) {
	value := normalizeMimeType(declared)
	if value == "" {
		value = normalizeMimeType(mime.TypeByExtension(strings.ToLower(path.Ext(assetPath))))
	}
	if value == "" {
		return "", nil
	}
	allowed := mimeTypesByType[mediaType]
	for _, candidate := range allowed {
		if candidate == value {
			return value, nil
		}
	}
	return "", fmt.Errorf("mime type %q not allowed for %s media (allowed: %s)", value, mediaType, strings.Join(allowed, ", "))
}

func normalizeMimeType(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	parsed, _, err := mime.ParseMediaType(value)
	if err != nil {
		return strings.ToLower(value)
	}
	return strings.ToLower(parsed)
}
