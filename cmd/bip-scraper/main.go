package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"bip-scraper/pkg/config"
	"bip-scraper/pkg/crawler"
	"bip-scraper/pkg/export"
	"bip-scraper/pkg/extract"
	"bip-scraper/pkg/fetch"
	"bip-scraper/pkg/filter"
	"bip-scraper/pkg/recipes"
	"bip-scraper/pkg/search"
	"bip-scraper/pkg/session"
	"bip-scraper/pkg/sources"
	"bip-scraper/pkg/storage"
	"bip-scraper/pkg/verify"
)

const crawlerUserAgent = "bip-scraper/1.0"

func main() {
	// --- Early Initialization & Flags ---
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05.000"})
	log.SetLevel(logrus.InfoLevel) // Default level

	configFileFlag := flag.String("config", "config.yaml", "Path to YAML config file")
	fromFlag := flag.String("from", "", "Start of the date window (YYYY-MM-DD, required)")
	toFlag := flag.String("to", "", "End of the date window (YYYY-MM-DD, required)")
	industriesFlag := flag.String("industries", "", "Comma-separated industry tags (empty = all)")
	profileFlag := flag.String("profile", "full", "Search profile (top10, cities, urban_municipalities, all_municipalities, sse, full)")
	voivodeshipsFlag := flag.String("voivodeships", "", "Comma-separated voivodeship filter (empty = all)")
	outputFlag := flag.String("output", "results.csv", "Path for the CSV output file")
	verifyFlag := flag.Bool("verify", false, "Run the LLM verification pass (needs ANTHROPIC_API_KEY)")
	listFlag := flag.Bool("list", false, "List available profiles, industry tags and source counts, then exit")
	logLevelFlag := flag.String("loglevel", "info", "Log level (debug, info, warn, error, fatal)")
	flag.Parse()

	// --- Logger Configuration ---
	level, err := logrus.ParseLevel(*logLevelFlag)
	if err != nil {
		log.Warnf("Invalid log level '%s', using default 'info'. Error: %v", *logLevelFlag, err)
	} else {
		log.SetLevel(level)
	}

	// --- Load Application Configuration ---
	log.Infof("Loading configuration from %s", *configFileFlag)
	yamlFile, err := os.ReadFile(*configFileFlag)
	if err != nil {
		log.Fatalf("Read config file '%s' error: %v", *configFileFlag, err)
	}
	var appCfg config.AppConfig
	if err := yaml.Unmarshal(yamlFile, &appCfg); err != nil {
		log.Fatalf("Parse config file '%s' error: %v", *configFileFlag, err)
	}

	warnings, err := appCfg.Validate()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	for _, w := range warnings {
		log.Warn(w)
	}

	if *listFlag {
		if err := printCatalogSummary(os.Stdout, appCfg.SourcesFile, log); err != nil {
			log.Fatalf("Listing failed: %v", err)
		}
		return
	}

	// --- Parse Search Parameters ---
	if *fromFlag == "" || *toFlag == "" {
		log.Fatal("Error: -from and -to flags are required.")
	}
	dateFrom, err := time.Parse("2006-01-02", *fromFlag)
	if err != nil {
		log.Fatalf("Invalid -from date '%s': %v", *fromFlag, err)
	}
	dateTo, err := time.Parse("2006-01-02", *toFlag)
	if err != nil {
		log.Fatalf("Invalid -to date '%s': %v", *toFlag, err)
	}

	var industries []filter.Industry
	if *industriesFlag != "" {
		for _, tag := range strings.Split(*industriesFlag, ",") {
			industries = append(industries, filter.Industry(strings.TrimSpace(tag)))
		}
	}
	var voivodeships []string
	if *voivodeshipsFlag != "" {
		for _, v := range strings.Split(*voivodeshipsFlag, ",") {
			voivodeships = append(voivodeships, strings.TrimSpace(v))
		}
	}

	// --- Signal Handling ---
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// --- Component Wiring ---
	classifier := filter.NewClassifier()

	client := fetch.NewClient(appCfg.HTTPClientSettings, log)
	rateLimiter := fetch.NewRateLimiter(appCfg.RequestsPerSecond, log)
	var robots *fetch.RobotsGate
	if appCfg.RespectRobots {
		robots = fetch.NewRobotsGate(client, crawlerUserAgent, log)
	}
	fetcher := fetch.NewFetcher(client, rateLimiter, appCfg.MaxConcurrent, robots, log)

	catalog, err := recipes.Load(appCfg.KnownPathsFile, log)
	if err != nil {
		log.Fatalf("Known-paths catalog error: %v", err)
	}

	var seen storage.SeenStore
	if appCfg.StateDir != "" {
		badgerStore, err := storage.NewBadgerStore(appCfg.StateDir, logrus.NewEntry(log))
		if err != nil {
			log.Fatalf("Seen store error: %v", err)
		}
		defer badgerStore.Close()
		seen = badgerStore
	} else {
		seen = storage.NewMemoryStore()
	}

	extractor := extract.NewExtractor(classifier, log)
	sourceCrawler := crawler.NewCrawler(fetcher, extractor, catalog, &appCfg, log)
	orchestrator := crawler.NewOrchestrator(sourceCrawler, seen, log)

	verifyCfg := appCfg.Verify
	if *verifyFlag {
		verifyCfg.Enabled = true
	}
	verifier, err := verify.New(verifyCfg, os.Getenv("ANTHROPIC_API_KEY"), log)
	if err != nil {
		log.Fatalf("Verifier error: %v", err)
	}

	runner := search.NewRunner(&appCfg, orchestrator, classifier, verifier, log)

	// --- Run ---
	sess := session.New(session.Params{
		DateFrom:     dateFrom,
		DateTo:       dateTo,
		Industries:   industries,
		Profile:      *profileFlag,
		Voivodeships: voivodeships,
		UseVerifier:  verifyCfg.Enabled,
	})
	profile := sources.GetProfile(*profileFlag)
	log.WithFields(logrus.Fields{
		"session":  sess.ID,
		"from":     *fromFlag,
		"to":       *toFlag,
		"profile":  profile.ID,
		"estimate": profile.EstimatedTime,
	}).Infof("Starting search: %s", profile.Name)

	results, err := runner.Run(ctx, sess)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	// --- Export ---
	outFile, err := os.Create(*outputFlag)
	if err != nil {
		log.Fatalf("Cannot create output file '%s': %v", *outputFlag, err)
	}
	defer outFile.Close()
	if err := export.WriteCSV(outFile, results); err != nil {
		log.Fatalf("CSV export failed: %v", err)
	}

	state := sess.State()
	log.WithFields(logrus.Fields{
		"records": len(results),
		"raw":     state.RawCount,
		"output":  *outputFlag,
	}).Info("Search finished")
}

// printCatalogSummary writes the profile, industry and source-catalog
// overview backing the -list flag.
func printCatalogSummary(w io.Writer, sourcesFile string, log *logrus.Logger) error {
	all, err := sources.Load(sourcesFile, log)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Profile:")
	for _, p := range sources.AvailableProfiles() {
		fmt.Fprintf(w, "  %-22s %s (%d źródeł, %s)\n",
			p.ID, p.Name, len(sources.FilterByProfile(all, p.ID)), p.EstimatedTime)
		fmt.Fprintf(w, "  %-22s %s\n", "", p.Description)
	}

	fmt.Fprintln(w, "\nBranże:")
	for _, industry := range filter.AllIndustries() {
		fmt.Fprintf(w, "  %s\n", industry)
	}

	counts := sources.CountByVoivodeship(all)
	regions := make([]string, 0, len(counts))
	for region := range counts {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	fmt.Fprintf(w, "\nŹródła wg województw (%d razem):\n", len(all))
	for _, region := range regions {
		fmt.Fprintf(w, "  %-22s %d\n", region, counts[region])
	}
	return nil
}
