package ingestion

import (
	"fmt"

	"github.com/spf13/viper"
)

const feedBaseURL = "https://raw.githubusercontent.com/openfootball/football.json/master"

// Feed describes the clubs and matches documents of one league season.
type Feed struct {
	League     string `mapstructure:"league"`
	Season     int    `mapstructure:"season"`
	ClubsURL   string `mapstructure:"clubs_url"`
	MatchesURL string `mapstructure:"matches_url"`
}

// Catalog is the ordered list of feeds to ingest.
type Catalog []Feed

// DefaultCatalog returns the first divisions of England, Germany, Spain and Italy
// for the 2015/16 and 2016/17 seasons.
func DefaultCatalog() Catalog {
	var catalog Catalog
	for _, league := range []string{"en", "de", "es", "it"} {
		for _, season := range []int{2015, 2016} {
			dir := fmt.Sprintf("%d-%02d", season, (season+1)%100)
			catalog = append(catalog, Feed{
				League:     league,
				Season:     season,
				ClubsURL:   fmt.Sprintf("%s/%s/%s.1.clubs.json", feedBaseURL, dir, league),
				MatchesURL: fmt.Sprintf("%s/%s/%s.1.json", feedBaseURL, dir, league),
			})
		}
	}
	return catalog
}

// LoadCatalog reads a catalog from a YAML file with a top-level "feeds" list.
// An empty path yields the default catalog.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read feeds file: %w", err)
	}

	var file struct {
		Feeds Catalog `mapstructure:"feeds"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("decode feeds file: %w", err)
	}

	if err := file.Feeds.Validate(); err != nil {
		return nil, err
	}
	return file.Feeds, nil
}

// Validate checks that every feed is complete.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("feeds file lists no feeds")
	}
	for i, f := range c {
		if f.League == "" || f.ClubsURL == "" || f.MatchesURL == "" {
			return fmt.Errorf("feed %d: league, clubs_url and matches_url are required", i)
		}
		if f.Season <= 0 {
			return fmt.Errorf("feed %d: season must be positive", i)
		}
	}
	return nil
}

// groups splits the catalog by league, keeping the order of first appearance.
func (c Catalog) groups() [][]Feed {
	index := make(map[string]int)
	var out [][]Feed
	for _, f := range c {
		i, ok := index[f.League]
		if !ok {
			i = len(out)
			index[f.League] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], f)
	}
	return out
}
