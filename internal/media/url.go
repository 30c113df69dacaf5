package media

import (
	"strings"

	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
)

// URLResolver turns stored asset paths into public URLs.
type URLResolver struct {
	base string
}

func NewURLResolver(publicBase string) URLResolver {
	return URLResolver{base: strings.TrimRight(strings.TrimSpace(publicBase), "/")}
}

// URL returns base + "/" + path, or the bare path when no base is configured.
func (r URLResolver) URL(assetPath string) string {
	if r.base == "" {
		return assetPath
	}
	return r.base + "/" + strings.TrimLeft(assetPath, "/")
}

// AssetURL resolves a possibly missing asset.
func (r URLResolver) AssetURL(asset *models.MediaAsset) *string {
	if asset == nil {
		return nil
	}
	u := r.URL(asset.Path)
	return &u
}

// View resolves a possibly missing asset into its public representation.
func (r URLResolver) View(asset *models.MediaAsset) *AssetView {
	if asset == nil {
		return nil
	}
	return &AssetView{MediaAsset: *asset, URL: r.URL(asset.Path)}
}

// AssetView is a media row with its resolved public URL.
type AssetView struct {
	models.MediaAsset
	URL string `json:"url"`
}
