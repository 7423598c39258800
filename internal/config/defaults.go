package config

const (
	defaultDataDir        = "data"
	defaultPaintingsCSV   = "df_reduced.csv"
	defaultHexCSV         = "df.csv"
	defaultExplodedCSV    = "df_reduced_exploded.csv"
	defaultGenreDumpDir   = "q2_testing_data"
	defaultGraphsDir      = "graphs"
	defaultGenreMinCount  = 15
	defaultTopN           = 10
	defaultOverTimeLimit  = 5
	defaultMetBaseURL     = "https://collectionapi.metmuseum.org/public/collection/v1"
	defaultMetArtist      = "Vincent van Gogh"
	defaultMetTimeout     = 15
	defaultTopicsTitle    = "Most Frequent Topics in Van Gogh's Paintings"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultOverrideRow    = 1618
	defaultOverrideYear   = "1888"
	defaultCacheEnabled   = true
	defaultExportGenreCSV = false
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:      defaultDataDir,
			PaintingsCSV: defaultPaintingsCSV,
			HexCSV:       defaultHexCSV,
			ExplodedCSV:  defaultExplodedCSV,
			GenreDumpDir: defaultGenreDumpDir,
			GraphsDir:    defaultGraphsDir,
			CachePath:    defaultCachePath(),
		},
		Analysis: Analysis{
			GenreMinCount:  defaultGenreMinCount,
			TopN:           defaultTopN,
			OverTimeLimit:  defaultOverTimeLimit,
			ExportGenreCSV: defaultExportGenreCSV,
			YearOverrides: []YearOverride{
				{Row: defaultOverrideRow, Year: defaultOverrideYear},
			},
		},
		Museum: Museum{
			BaseURL:        defaultMetBaseURL,
			Artist:         defaultMetArtist,
			TimeoutSeconds: defaultMetTimeout,
			CacheEnabled:   defaultCacheEnabled,
			TopicsTitle:    defaultTopicsTitle,
		},
		Questions: Questions{
			ColorsOverTime: true,
			StylesOverTime: true,
			GenreColors:    true,
			Topics:         false,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
