// Web server for the grade distribution analyzer.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"

	prof "github.com/go-while/go-cpu-mem-profiler"
	"github.com/joho/godotenv"

	"github.com/spinachbro/Grade-Distribution-Analyzer/internal/config"
	"github.com/spinachbro/Grade-Distribution-Analyzer/internal/database"
	"github.com/spinachbro/Grade-Distribution-Analyzer/internal/web"
)

var (
	// command-line flags
	webport     int
	webssl      bool
	webcertFile string
	webkeyFile  string
	webDir      string
	dataDir     string
	buckets     int
	debug       bool
	pprofAddr   string
)

var appVersion = "-unset-"

var Prof *prof.Profiler

func main() {
	config.AppVersion = appVersion

	// Load environment from a .env file for local development, if present.
	_ = godotenv.Load(".env")

	flag.IntVar(&webport, "webport", 0, "Web server port (default: 8080 or GRADEBOARD_WEB_PORT)")
	flag.BoolVar(&webssl, "webssl", false, "Enable SSL")
	flag.StringVar(&webcertFile, "websslcert", "", "SSL certificate file (/path/to/fullchain.pem)")
	flag.StringVar(&webkeyFile, "websslkey", "", "SSL key file (/path/to/privkey.pem)")
	flag.StringVar(&webDir, "webdir", "web", "Directory holding templates/")
	flag.StringVar(&dataDir, "datadir", "data", "Directory for the usage counter database")
	flag.IntVar(&buckets, "buckets", config.DefaultHistogramBuckets, "Number of equal-width histogram buckets per analysis")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.StringVar(&pprofAddr, "pprof", "", "Start pprof web server on this address (e.g. :51111)")
	flag.Parse()

	mainConfig := config.NewDefaultConfig()
	log.Printf("Starting gradeboard web server (version: %s)", appVersion)

	webConfig := &mainConfig.Web
	webConfig.WebDir = webDir
	webConfig.Debug = debug

	// Port resolution order: flag, environment, default.
	if webport > 0 {
		webConfig.ListenPort = webport
		log.Printf("[WEB]: Overriding listen port with command-line flag: %d", webConfig.ListenPort)
	} else if portEnv := os.Getenv("GRADEBOARD_WEB_PORT"); portEnv != "" {
		p, err := strconv.Atoi(portEnv)
		if err != nil {
			log.Fatalf("[WEB]: Invalid port in GRADEBOARD_WEB_PORT: %s", portEnv)
		}
		webConfig.ListenPort = p
		log.Printf("[WEB]: Port overridden by environment variable: %d", p)
	}
	if webssl {
		webConfig.SSL = true
		webConfig.CertFile = webcertFile
		webConfig.KeyFile = webkeyFile
		log.Printf("[WEB]: SSL enabled via command-line flag")
	}

	if webConfig.ListenPort < 1024 || webConfig.ListenPort > 65535 {
		log.Fatalf("[WEB]: Invalid port number: %d (must be between 1024 and 65535)", webConfig.ListenPort)
	}

	mainConfig.HistogramBuckets = config.ClampBuckets(buckets)
	mainConfig.Database.DataDir = dataDir

	if pprofAddr != "" {
		Prof = prof.NewProf()
		go Prof.PprofWeb(pprofAddr)
		log.Printf("[WEB]: pprof web server listening on %s", pprofAddr)
	}

	dbConfig := database.DefaultDBConfig()
	dbConfig.DataDir = mainConfig.Database.DataDir
	db, err := database.OpenDatabase(dbConfig)
	if err != nil {
		log.Fatalf("[WEB]: Failed to initialize database: %v", err)
	}

	server := web.NewServer(db, webConfig, mainConfig.HistogramBuckets)

	// Cross-platform signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	protocol := "http"
	if webConfig.SSL {
		protocol = "https"
	}
	log.Printf("[WEB]: Starting web server on %s://localhost:%d", protocol, webConfig.ListenPort)

	webServerErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			webServerErrChan <- err
		}
	}()

	log.Printf("[WEB]: Server started successfully. Press Ctrl+C to gracefully shutdown...")

	select {
	case <-sigChan:
		log.Printf("[WEB]: Received shutdown signal, initiating graceful shutdown...")
	case err := <-webServerErrChan:
		log.Fatalf("[WEB]: Failed to start web server: %v", err)
	}

	close(db.StopChan)
	if err := db.Shutdown(); err != nil {
		log.Fatalf("[WEB]: Failed to shutdown database: %v", err)
	}

	log.Printf("[WEB]: Graceful shutdown completed")
}
