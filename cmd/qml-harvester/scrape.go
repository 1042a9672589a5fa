package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/qml-harvester/internal/pipeline"
	"github.com/pdiddy/qml-harvester/internal/scrape"
	"github.com/pdiddy/qml-harvester/internal/secrets"
	"github.com/pdiddy/qml-harvester/pkg/types"
)

// Defaults are the constants the original harvester hard-coded; flags and
// the config file override them.
const (
	defaultSearchURL = "https://phys.org/search/sort/date/7d/?search=quantum+machine+learning"
	defaultTimeout   = 30 * time.Second
	defaultDelay     = 3 * time.Second
	defaultWindow    = 7
	defaultDir       = "downloads"
	defaultOutput    = "qml_articles.txt"

	// browserUserAgent mimics a desktop browser; the publisher serves a
	// reduced page to unknown clients.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// apiUserAgent identifies the tool to the arXiv API.
	apiUserAgent = "qml-harvester/0.1"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Run the scrape → filter → resolve → download pipeline once",
	Long: `Scrape fetches the publisher's search page, keeps articles whose titles
match the topic vocabulary and whose dates fall in the trailing window,
looks up an open-access preprint for each, downloads the PDFs, and rewrites
the metadata log.`,
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().String("search-url", defaultSearchURL, "publisher search page URL")
	scrapeCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	scrapeCmd.Flags().Duration("delay", defaultDelay, "politeness delay before each outbound request")
	scrapeCmd.Flags().Int("window", defaultWindow, "trailing acceptance window in days")
	scrapeCmd.Flags().String("downloads-dir", defaultDir, "directory PDFs are saved to")
	scrapeCmd.Flags().String("output", defaultOutput, "plain-text report file (overwritten each run)")
	scrapeCmd.Flags().String("topics-file", "", "YAML vocabulary file for the topic filter")

	for _, name := range []string{"search-url", "timeout", "delay", "window", "downloads-dir", "output", "topics-file"} {
		viper.BindPFlag("scrape."+name, scrapeCmd.Flags().Lookup(name))
	}

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	timeout := viper.GetDuration("scrape.timeout")
	delay := viper.GetDuration("scrape.delay")

	topic := scrape.TopicFilter{
		Primary:   "quantum",
		Secondary: []string{"machine learning", "neural network", "deep learning", "qml"},
	}
	if path := viper.GetString("scrape.topics-file"); path != "" {
		var err error
		topic, err = scrape.LoadTopicFile(path)
		if err != nil {
			return err
		}
	}

	// A contact email, if provided, rides along on the API User-Agent so
	// the archive operators can reach out about traffic.
	resolveUA := apiUserAgent
	if email := secrets.ContactEmail(loadedSecrets); email != "" {
		resolveUA = fmt.Sprintf("%s (mailto:%s)", apiUserAgent, email)
	}

	cfg := types.PipelineConfig{
		Scrape: types.ScrapeConfig{
			HTTPConfig:     types.HTTPConfig{Timeout: timeout, UserAgent: browserUserAgent},
			SearchURL:      viper.GetString("scrape.search-url"),
			PrimaryTerm:    topic.Primary,
			SecondaryTerms: topic.Secondary,
			WindowDays:     viper.GetInt("scrape.window"),
			RequestDelay:   delay,
		},
		Resolve: types.ResolveConfig{
			HTTPConfig:   types.HTTPConfig{Timeout: timeout, UserAgent: resolveUA},
			RequestDelay: delay,
		},
		Download: types.DownloadConfig{
			HTTPConfig:   types.HTTPConfig{Timeout: timeout, UserAgent: apiUserAgent},
			Dir:          viper.GetString("scrape.downloads-dir"),
			RequestDelay: delay,
		},
		Report: types.ReportConfig{
			OutputPath: viper.GetString("scrape.output"),
		},
	}

	_, err := pipeline.Run(cmd.Context(), cfg, os.Stdout)
	return err
}
