package startup

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"beatsite/internal/logging"

	"github.com/gorilla/mux"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// RouteInfo contains information about a registered route
type RouteInfo struct {
	Method string
	Path   string
	Name   string
}

// Defaults for the tunables read by LoadConfig.
const (
	DefaultTrendingWindow   = time.Hour
	DefaultTrendingTick     = time.Minute
	DefaultContactRateLimit = 1.0
	DefaultCollectInterval  = time.Minute
)

// Config holds all application configuration
type Config struct {
	Port            string
	MetricsPort     string
	MetricsEnabled  bool
	LogStaticFiles  bool
	LogHealthChecks bool

	// CatalogFile is an optional TOML catalog; empty means the built-in catalog.
	CatalogFile string

	TrendingWindow   time.Duration
	TrendingTick     time.Duration
	ContactRateLimit float64
	CollectInterval  time.Duration

	// TrustedProxies are addresses or CIDR prefixes allowed to set X-Forwarded-For.
	TrustedProxies []string
}

// LoadConfig loads and validates configuration from environment variables
func LoadConfig() (*Config, error) {
	printBanner()
	logSystemInfo()

	section("CONFIGURATION")

	config := &Config{
		Port:             getEnv("PORT", "8080"),
		MetricsPort:      getEnv("METRICS_PORT", "9090"),
		MetricsEnabled:   getEnvBool("METRICS_ENABLED", true),
		LogStaticFiles:   getEnvBool("LOG_STATIC_FILES", false),
		LogHealthChecks:  getEnvBool("LOG_HEALTH_CHECKS", true),
		CatalogFile:      getEnv("CATALOG_FILE", ""),
		TrendingWindow:   getEnvDuration("TRENDING_WINDOW", DefaultTrendingWindow),
		TrendingTick:     getEnvDuration("TRENDING_TICK", DefaultTrendingTick),
		ContactRateLimit: getEnvFloat("CONTACT_RATE_LIMIT", DefaultContactRateLimit),
		CollectInterval:  getEnvDuration("COLLECT_INTERVAL", DefaultCollectInterval),
		TrustedProxies:   getEnvList("TRUSTED_PROXIES"),
	}

	logging.Info("  PORT:                %s", config.Port)
	logging.Info("  METRICS_PORT:        %s", config.MetricsPort)
	logging.Info("  METRICS_ENABLED:     %v", config.MetricsEnabled)
	logging.Info("  CATALOG_FILE:        %s", orBuiltIn(config.CatalogFile))
	logging.Info("  TRENDING_WINDOW:     %s", config.TrendingWindow)
	logging.Info("  TRENDING_TICK:       %s", config.TrendingTick)
	logging.Info("  CONTACT_RATE_LIMIT:  %g/s", config.ContactRateLimit)
	logging.Info("  COLLECT_INTERVAL:    %s", config.CollectInterval)
	logging.Info("  TRUSTED_PROXIES:     %s", orNone(config.TrustedProxies))
	logging.Info("  LOG_STATIC_FILES:    %v", config.LogStaticFiles)
	logging.Info("  LOG_HEALTH_CHECKS:   %v", config.LogHealthChecks)
	logging.Info("  LOG_LEVEL:           %s", logging.GetLevel())

	if config.TrendingTick > config.TrendingWindow {
		logging.Warn("  TRENDING_TICK exceeds TRENDING_WINDOW, using window as tick")
		config.TrendingTick = config.TrendingWindow
	}

	if config.CatalogFile != "" {
		path, err := filepath.Abs(config.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve catalog file path: %w", err)
		}
		if err := checkFile(path); err != nil {
			return nil, fmt.Errorf("catalog file error: %w", err)
		}
		config.CatalogFile = path
		logging.Info("  Catalog file (absolute): %s", path)
	}

	logging.Info("")
	logging.Info("  Feature availability:")
	logging.Info("    Metrics:       %s", enabledString(config.MetricsEnabled))
	logging.Info("    Rate limiting: %s", enabledString(config.ContactRateLimit > 0))

	return config, nil
}

func orBuiltIn(path string) string {
	if path == "" {
		return "(built-in)"
	}
	return path
}

func orNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ",")
}

func enabledString(enabled bool) string {
	if enabled {
		return "ENABLED"
	}
	return "DISABLED"
}

// LogCatalogInit logs the loaded catalog and how long it took.
func LogCatalogInit(source string, counts map[string]int, duration time.Duration) {
	logging.Info("")
	section("CATALOG INITIALIZATION")
	logging.Info("  Source: %s", orBuiltIn(source))

	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		logging.Info("    %-8s %d", k+":", counts[k])
	}
	logging.Info("  [OK] Catalog loaded in %v", duration)
}

// LogTrendingInit logs the trending window configuration.
func LogTrendingInit(window, tick time.Duration) {
	logging.Info("")
	section("TRENDING INITIALIZATION")
	logging.Info("  Window: %v (%d buckets of %v)", window, bucketCount(window, tick), tick)
}

func bucketCount(window, tick time.Duration) int {
	if tick <= 0 {
		return 0
	}
	return int(window / tick)
}

// GetRoutes extracts all registered routes from a mux.Router
func GetRoutes(router *mux.Router) ([]RouteInfo, error) {
	var routes []RouteInfo

	err := router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err != nil {
			// Prefix-only routes (static files) have no template
			pathTemplate, err = route.GetPathRegexp()
			if err != nil {
				return err
			}
		}

		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{"*"}
		}

		for _, method := range methods {
			routes = append(routes, RouteInfo{
				Method: method,
				Path:   pathTemplate,
				Name:   route.GetName(),
			})
		}

		return nil
	})

	return routes, err
}

// LogHTTPRoutes logs the access log settings and, at debug level, every
// registered route grouped by its first path segment.
func LogHTTPRoutes(router *mux.Router, logStaticFiles, logHealthChecks bool) {
	logging.Info("")
	section("HTTP SERVER SETUP")

	if logging.IsDebugEnabled() {
		routes, err := GetRoutes(router)
		if err != nil {
			logging.Warn("error walking routes: %v", err)
		}
		logging.Debug("  Registered routes (%d total):", len(routes))
		for _, g := range groupRoutes(routes) {
			logging.Debug("")
			logging.Debug("  [%s]", g.name)
			for _, route := range g.routes {
				logging.Debug("    %-6s %s", route.Method, route.Path)
			}
		}
		logging.Debug("")
	}

	logging.Info("  Access log: W3C extended format")
	logging.Info("    Static files:  %s", onOff(logStaticFiles, "LOG_STATIC_FILES"))
	logging.Info("    Health checks: %s", onOff(logHealthChecks, "LOG_HEALTH_CHECKS"))
}

func onOff(on bool, env string) string {
	if on {
		return "ON"
	}
	return "OFF (set " + env + "=true to enable)"
}

type routeGroup struct {
	name   string
	routes []RouteInfo
}

// groupRoutes buckets routes by getRouteGroup, sorted by group name.
func groupRoutes(routes []RouteInfo) []routeGroup {
	byName := make(map[string][]RouteInfo)
	for _, route := range routes {
		name := getRouteGroup(route.Path)
		if name == "" {
			name = "root"
		}
		byName[name] = append(byName[name], route)
	}

	groups := make([]routeGroup, 0, len(byName))
	for name, rs := range byName {
		groups = append(groups, routeGroup{name: name, routes: rs})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].name < groups[j].name })
	return groups
}

// getRouteGroup extracts a group name from a route path
func getRouteGroup(path string) string {
	path = strings.TrimPrefix(path, "/")

	parts := strings.SplitN(path, "/", 2)
	first := parts[0]

	// api/search, api/beats, ...
	if first == "api" && len(parts) > 1 {
		subParts := strings.SplitN(parts[1], "/", 2)
		return "api/" + subParts[0]
	}

	return first
}

// ServerConfig holds configuration for the server startup log
type ServerConfig struct {
	Port            string
	MetricsPort     string
	MetricsEnabled  bool
	StartupDuration time.Duration
}

// LogServerStarted logs successful server start with all endpoint information
func LogServerStarted(config ServerConfig) {
	logging.Info("")
	section("SERVER STARTED")
	logging.Info("  Startup time:    %v", config.StartupDuration)
	logging.Info("")
	logging.Info("  Endpoints:")
	logging.Info("    Storefront:    http://0.0.0.0:%s", config.Port)
	logging.Info("    Search API:    http://0.0.0.0:%s/api/search?q=", config.Port)
	if config.MetricsEnabled {
		logging.Info("    Metrics:       http://0.0.0.0:%s/metrics", config.MetricsPort)
	} else {
		logging.Info("    Metrics:       DISABLED")
	}
	logging.Info("")
	logging.Info("  Press Ctrl+C to stop the server")
	logging.Info(rule)
	logging.Info("")
}

// LogShutdownInitiated logs shutdown start
func LogShutdownInitiated(signal string) {
	logging.Info("")
	section("SHUTDOWN INITIATED (received " + signal + ")")
}

// LogShutdownStep logs a shutdown step
func LogShutdownStep(step string) {
	logging.Debug("  %s...", step)
}

// LogShutdownStepComplete logs a completed shutdown step
func LogShutdownStepComplete(step string) {
	logging.Info("  [OK] %s", step)
}

// LogShutdownComplete logs shutdown completion
func LogShutdownComplete() {
	logging.Info("  [OK] Shutdown complete")
}

// LogFatal logs a fatal error and exits
func LogFatal(format string, args ...interface{}) {
	logging.Fatal(format, args...)
}

const rule = "------------------------------------------------------------"

// section logs a titled block header.
func section(title string) {
	logging.Info(rule)
	logging.Info(title)
	logging.Info(rule)
}

func printBanner() {
	banner := `
------------------------------------------------------------
    ____             __  _____ _ __
   / __ )___  ____ _/ /_/ ___/(_) /____
  / __  / _ \/ __ '/ __/\__ \/ / __/ _ \
 / /_/ /  __/ /_/ / /_ ___/ / / /_/  __/
/_____/\___/\__,_/\__//____/_/\__/\___/

------------------------------------------------------------`
	fmt.Println(banner)
	logging.Info("  Version:    %s", Version)
	logging.Info("  Commit:     %s", Commit)
	logging.Info("  Build Time: %s", BuildTime)
	logging.Info("  Started:    %s", time.Now().Format(time.RFC1123))
	logging.Info("")
}

func logSystemInfo() {
	section("SYSTEM INFORMATION")
	logging.Info("  Go version:      %s", runtime.Version())
	logging.Info("  OS/Arch:         %s/%s", runtime.GOOS, runtime.GOARCH)
	logging.Info("  CPUs available:  %d", runtime.NumCPU())
	logging.Info("  GOMAXPROCS:      %d", runtime.GOMAXPROCS(0))

	if logging.IsDebugEnabled() {
		logging.Debug("  Goroutines:      %d", runtime.NumGoroutine())

		if wd, err := os.Getwd(); err == nil {
			logging.Debug("  Working dir:     %s", wd)
		}
		if hostname, err := os.Hostname(); err == nil {
			logging.Debug("  Hostname:        %s", hostname)
		}
	}

	logging.Info("")
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path %s is a directory", path)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvList splits a comma separated value, dropping empty items.
func getEnvList(key string) []string {
	var items []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnvBool(key string, defaultValue bool) bool {
	return envValue(key, defaultValue, "boolean value", strconv.ParseBool, nil)
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	return envValue(key, defaultValue, "duration", time.ParseDuration, func(d time.Duration) bool { return d > 0 })
}

func getEnvFloat(key string, defaultValue float64) float64 {
	parse := func(v string) (float64, error) { return strconv.ParseFloat(v, 64) }
	return envValue(key, defaultValue, "number", parse, func(f float64) bool { return f >= 0 })
}

// envValue parses key with parse, falling back to defaultValue with a warning
// when the value is malformed or rejected by valid.
func envValue[T any](key string, defaultValue T, what string, parse func(string) (T, error), valid func(T) bool) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := parse(value)
	if err != nil || (valid != nil && !valid(parsed)) {
		logging.Warn("Invalid %s for %s: %q, using default: %v", what, key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
