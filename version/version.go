package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/vidstrip/vidstrip/filesystem"
	"github.com/vidstrip/vidstrip/network"
	"github.com/vidstrip/vidstrip/util"
	"github.com/vidstrip/vidstrip/where"
)

const (
	releasesPage = "https://github.com/vidstrip/vidstrip/releases/tag/v"
	latestAPI    = "https://api.github.com/repos/vidstrip/vidstrip/releases/latest"
)

var latestCache = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   48 * time.Hour,
	FileSystem: &filesystem.CacheFs{},
})

// Latest returns the newest released version without the "v" prefix.
// Results are cached for two days.
func Latest() (string, error) {
	cached, expired, err := latestCache.Get()
	if err != nil {
		return "", err
	}

	if !expired && cached != "" {
		return cached, nil
	}

	resp, err := network.Client.Get(latestAPI)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("releases api: %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err = json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	_ = latestCache.Set(latest)
	return latest, nil
}
