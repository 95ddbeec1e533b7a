package startup

import (
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/gorilla/mux"
)

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()

	if info.Version == "" {
		t.Error("Expected Version to be set")
	}
	if info.OS == "" {
		t.Error("Expected OS to be set")
	}
	if info.Arch == "" {
		t.Error("Expected Arch to be set")
	}
	if info.GoVersion != GoVersion {
		t.Errorf("Expected GoVersion=%s, got %s", GoVersion, info.GoVersion)
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		want         string
		setEnv       bool
	}{
		{"Returns default when env var not set", "TEST_UNSET_VAR", "default", "", "default", false},
		{"Returns env value when set", "TEST_SET_VAR", "default", "custom", "custom", true},
		{"Returns default when env var is empty", "TEST_EMPTY_VAR", "default", "", "default", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			got := getEnv(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnv(%q, %q) = %q, want %q", tt.key, tt.defaultValue, got, tt.want)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue bool
		want         bool
	}{
		{"Unset uses default", "", true, true},
		{"true", "true", false, true},
		{"1", "1", false, true},
		{"false", "false", true, false},
		{"Invalid uses default", "maybe", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL_VAR", tt.value)
			if got := getEnvBool("TEST_BOOL_VAR", tt.defaultValue); got != tt.want {
				t.Errorf("getEnvBool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"Unset uses default", "", time.Minute},
		{"Valid", "90s", 90 * time.Second},
		{"Invalid uses default", "soon", time.Minute},
		{"Negative uses default", "-5m", time.Minute},
		{"Zero uses default", "0s", time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tt.value)
			if got := getEnvDuration("TEST_DURATION_VAR", time.Minute); got != tt.want {
				t.Errorf("getEnvDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  float64
	}{
		{"Unset uses default", "", 1},
		{"Valid", "2.5", 2.5},
		{"Zero disables", "0", 0},
		{"Negative uses default", "-1", 1},
		{"Invalid uses default", "fast", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_FLOAT_VAR", tt.value)
			if got := getEnvFloat("TEST_FLOAT_VAR", 1); got != tt.want {
				t.Errorf("getEnvFloat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"Unset", "", nil},
		{"Single", "10.0.0.1", []string{"10.0.0.1"}},
		{"Trims and drops empties", " 10.0.0.1, ,172.16.0.0/12 ,", []string{"10.0.0.1", "172.16.0.0/12"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_LIST_VAR", tt.value)
			got := getEnvList("TEST_LIST_VAR")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("getEnvList() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "METRICS_PORT", "METRICS_ENABLED", "CATALOG_FILE",
		"TRENDING_WINDOW", "TRENDING_TICK", "CONTACT_RATE_LIMIT", "COLLECT_INTERVAL", "TRUSTED_PROXIES",
	} {
		t.Setenv(key, "")
	}

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if config.Port != "8080" {
		t.Errorf("Expected Port=8080, got %s", config.Port)
	}
	if config.MetricsPort != "9090" {
		t.Errorf("Expected MetricsPort=9090, got %s", config.MetricsPort)
	}
	if !config.MetricsEnabled {
		t.Error("Expected metrics enabled by default")
	}
	if config.CatalogFile != "" {
		t.Errorf("Expected built-in catalog, got %s", config.CatalogFile)
	}
	if config.TrendingWindow != DefaultTrendingWindow {
		t.Errorf("Expected TrendingWindow=%v, got %v", DefaultTrendingWindow, config.TrendingWindow)
	}
	if config.TrendingTick != DefaultTrendingTick {
		t.Errorf("Expected TrendingTick=%v, got %v", DefaultTrendingTick, config.TrendingTick)
	}
	if config.ContactRateLimit != DefaultContactRateLimit {
		t.Errorf("Expected ContactRateLimit=%v, got %v", DefaultContactRateLimit, config.ContactRateLimit)
	}
	if config.CollectInterval != DefaultCollectInterval {
		t.Errorf("Expected CollectInterval=%v, got %v", DefaultCollectInterval, config.CollectInterval)
	}
	if len(config.TrustedProxies) != 0 {
		t.Errorf("Expected no trusted proxies, got %v", config.TrustedProxies)
	}
}

func TestLoadConfigClampsTick(t *testing.T) {
	t.Setenv("CATALOG_FILE", "")
	t.Setenv("TRENDING_WINDOW", "10m")
	t.Setenv("TRENDING_TICK", "1h")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.TrendingTick != 10*time.Minute {
		t.Errorf("Expected tick clamped to window, got %v", config.TrendingTick)
	}
}

func TestLoadConfigCatalogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	if err := os.WriteFile(path, []byte("[[entry]]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CATALOG_FILE", path)
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.CatalogFile != path {
		t.Errorf("Expected CatalogFile=%s, got %s", path, config.CatalogFile)
	}

	t.Setenv("CATALOG_FILE", filepath.Join(dir, "missing.toml"))
	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error for missing catalog file")
	}

	t.Setenv("CATALOG_FILE", dir)
	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error when catalog file is a directory")
	}
}

func TestGetRouteGroup(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", ""},
		{"/health", "health"},
		{"/api/search", "api/search"},
		{"/api/search/activate", "api/search"},
		{"/api/beats/buy", "api/beats"},
		{"/static/", "static"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := getRouteGroup(tt.path); got != tt.want {
				t.Errorf("getRouteGroup(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestGetRoutes(t *testing.T) {
	noop := func(http.ResponseWriter, *http.Request) {}

	router := mux.NewRouter()
	router.HandleFunc("/api/search", noop).Methods(http.MethodGet).Name("search")
	router.HandleFunc("/api/contact", noop).Methods(http.MethodPost)
	router.PathPrefix("/static/").HandlerFunc(noop)

	routes, err := GetRoutes(router)
	if err != nil {
		t.Fatalf("GetRoutes() error = %v", err)
	}
	if len(routes) != 3 {
		t.Fatalf("Expected 3 routes, got %d", len(routes))
	}

	if routes[0].Method != http.MethodGet || routes[0].Path != "/api/search" || routes[0].Name != "search" {
		t.Errorf("Unexpected first route %+v", routes[0])
	}
	if routes[2].Method != "*" {
		t.Errorf("Expected wildcard method for prefix route, got %q", routes[2].Method)
	}
}

func TestBucketCount(t *testing.T) {
	if got := bucketCount(time.Hour, time.Minute); got != 60 {
		t.Errorf("Expected 60 buckets, got %d", got)
	}
	if got := bucketCount(time.Hour, 0); got != 0 {
		t.Errorf("Expected 0 buckets for zero tick, got %d", got)
	}
}

func TestLifecycleLoggingDoesNotPanic(_ *testing.T) {
	LogCatalogInit("", map[string]int{"beat": 6, "artist": 3, "genre": 4}, time.Millisecond)
	LogTrendingInit(time.Hour, time.Minute)
	LogHTTPRoutes(mux.NewRouter(), true, false)
	LogServerStarted(ServerConfig{Port: "8080", MetricsPort: "9090", MetricsEnabled: true})
	LogShutdownInitiated("SIGTERM")
	LogShutdownStep("Stopping HTTP server")
	LogShutdownStepComplete("HTTP server stopped")
	LogShutdownComplete()
}

func TestGroupRoutes(t *testing.T) {
	routes := []RouteInfo{
		{Method: "GET", Path: "/api/search"},
		{Method: "GET", Path: "/"},
		{Method: "POST", Path: "/api/beats/buy"},
		{Method: "GET", Path: "/api/search/html"},
		{Method: "GET", Path: "/health"},
	}

	groups := groupRoutes(routes)

	var names []string
	for _, g := range groups {
		names = append(names, g.name)
	}
	want := []string{"api/beats", "api/search", "health", "root"}
	if len(names) != len(want) {
		t.Fatalf("groups = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("groups[%d] = %q, want %q", i, names[i], want[i])
		}
	}
	if n := len(groups[1].routes); n != 2 {
		t.Errorf("api/search has %d routes, want 2", n)
	}
}

func TestOnOff(t *testing.T) {
	if got := onOff(true, "X"); got != "ON" {
		t.Errorf("onOff(true) = %q", got)
	}
	if got := onOff(false, "LOG_STATIC_FILES"); got != "OFF (set LOG_STATIC_FILES=true to enable)" {
		t.Errorf("onOff(false) = %q", got)
	}
}
