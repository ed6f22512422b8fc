package middleware

import (
	"net/http"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// unmatchedPath route tablosunda olmayan path'ler tek anahtarda toplanır
const unmatchedPath = "unmatched"

// MetricsConfig metrics middleware ayarları
type MetricsConfig struct {
	SlowRequestThreshold time.Duration // Yavaş istek eşiği
	MaxStoredResponse    int           // Path başına saklanan süre sayısı
}

// DefaultMetricsConfig varsayılan ayarlar
func DefaultMetricsConfig() *MetricsConfig {
	return &MetricsConfig{
		SlowRequestThreshold: 2 * time.Second,
		MaxStoredResponse:    100,
	}
}

// Metrics süreç içi istek sayaçları. Arka plan goroutine'i yoktur,
// bellek bilgisi snapshot anında okunur.
type Metrics struct {
	config *MetricsConfig

	mutex            sync.Mutex
	totalRequests    int64
	activeRequests   int64
	slowRequests     int64
	responseTimes    map[string][]time.Duration
	statusCodeCounts map[int]int64
	endpointCounts   map[string]int64
}

// MetricsSnapshot /metrics yanıtı
type MetricsSnapshot struct {
	TotalRequests       int64                       `json:"total_requests"`
	ActiveRequests      int64                       `json:"active_requests"`
	SlowRequests        int64                       `json:"slow_requests"`
	MemoryUsage         uint64                      `json:"memory_usage_bytes"`
	Goroutines          int                         `json:"goroutines"`
	StatusCodeCounts    map[int]int64               `json:"status_code_counts"`
	EndpointCounts      map[string]int64            `json:"endpoint_counts"`
	ResponseTimeSummary map[string]ResponseTimeStat `json:"response_time_summary"`
	LastUpdated         time.Time                   `json:"last_updated"`
}

// ResponseTimeStat milisaniye cinsinden özet
type ResponseTimeStat struct {
	Count     int     `json:"count"`
	AverageMs float64 `json:"average_ms"`
	MinMs     float64 `json:"min_ms"`
	MaxMs     float64 `json:"max_ms"`
	P95Ms     float64 `json:"p95_ms"`
}

// NewMetrics yeni sayaç seti oluşturur
func NewMetrics(config *MetricsConfig) *Metrics {
	if config == nil {
		config = DefaultMetricsConfig()
	}
	return &Metrics{
		config:           config,
		responseTimes:    make(map[string][]time.Duration),
		statusCodeCounts: make(map[int]int64),
		endpointCounts:   make(map[string]int64),
	}
}

// Middleware istekleri sayar. knownPath false dönen path'ler unmatched altında toplanır.
func (m *Metrics) Middleware(knownPath func(string) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			key := r.URL.Path
			if knownPath != nil && !knownPath(key) {
				key = unmatchedPath
			}

			m.mutex.Lock()
			m.totalRequests++
			m.activeRequests++
			m.endpointCounts[key]++
			m.mutex.Unlock()

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			elapsed := time.Since(start)
			m.record(key, wrapped.statusCode, elapsed)

			if elapsed > m.config.SlowRequestThreshold {
				log.Warn().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Dur("response_time", elapsed).
					Msg("Slow request detected")
			}
		})
	}
}

func (m *Metrics) record(key string, status int, elapsed time.Duration) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.activeRequests--
	m.statusCodeCounts[status]++
	if elapsed > m.config.SlowRequestThreshold {
		m.slowRequests++
	}

	times := append(m.responseTimes[key], elapsed)
	if len(times) > m.config.MaxStoredResponse {
		times = times[len(times)-m.config.MaxStoredResponse:]
	}
	m.responseTimes[key] = times
}

// Snapshot sayaçların kopyasını döner
func (m *Metrics) Snapshot() *MetricsSnapshot {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	m.mutex.Lock()
	defer m.mutex.Unlock()

	summary := make(map[string]ResponseTimeStat, len(m.responseTimes))
	for path, times := range m.responseTimes {
		if len(times) > 0 {
			summary[path] = summarize(times)
		}
	}

	return &MetricsSnapshot{
		TotalRequests:       m.totalRequests,
		ActiveRequests:      m.activeRequests,
		SlowRequests:        m.slowRequests,
		MemoryUsage:         mem.Alloc,
		Goroutines:          runtime.NumGoroutine(),
		StatusCodeCounts:    copyMap(m.statusCodeCounts),
		EndpointCounts:      copyMap(m.endpointCounts),
		ResponseTimeSummary: summary,
		LastUpdated:         time.Now(),
	}
}

func summarize(times []time.Duration) ResponseTimeStat {
	sorted := append([]time.Duration{}, times...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, t := range sorted {
		total += t
	}

	p95 := int(float64(len(sorted))*0.95 + 0.5)
	if p95 >= len(sorted) {
		p95 = len(sorted) - 1
	}

	return ResponseTimeStat{
		Count:     len(sorted),
		AverageMs: ms(total / time.Duration(len(sorted))),
		MinMs:     ms(sorted[0]),
		MaxMs:     ms(sorted[len(sorted)-1]),
		P95Ms:     ms(sorted[p95]),
	}
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func copyMap[K comparable, V any](original map[K]V) map[K]V {
	out := make(map[K]V, len(original))
	for k, v := range original {
		out[k] = v
	}
	return out
}
