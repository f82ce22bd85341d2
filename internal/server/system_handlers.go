package server

import (
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/psyperinat/psycost/internal/api"
	"github.com/psyperinat/psycost/internal/database"
)

// SystemHandlers reports process and host statistics.
type SystemHandlers struct {
	log        zerolog.Logger
	dataDir    string
	birthsDB   *database.DB
	parameters int
	startedAt  time.Time
}

// NewSystemHandlers creates system handlers
func NewSystemHandlers(log zerolog.Logger, dataDir string, birthsDB *database.DB, parameters int) *SystemHandlers {
	return &SystemHandlers{
		log:        log.With().Str("handler", "system").Logger(),
		dataDir:    dataDir,
		birthsDB:   birthsDB,
		parameters: parameters,
		startedAt:  time.Now(),
	}
}

// SystemStatsResponse is the body of GET /api/system/stats
type SystemStatsResponse struct {
	CPUPercent    float64 `json:"cpu_percent"`
	RAMPercent    float64 `json:"ram_percent"`
	Goroutines    int     `json:"goroutines"`
	HeapAllocMB   float64 `json:"heap_alloc_mb"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	DataDirMB     float64 `json:"data_dir_mb"`
	Parameters    int     `json:"parameters"`
}

// DatabaseStatsResponse is the body of GET /api/system/database/stats
type DatabaseStatsResponse struct {
	Name        string          `json:"name"`
	Path        string          `json:"path"`
	Healthy     bool            `json:"healthy"`
	Stats       *database.Stats `json:"stats,omitempty"`
	LastChecked string          `json:"last_checked"`
}

// HandleSystemStats handles GET /api/system/stats
func (h *SystemHandlers) HandleSystemStats(w http.ResponseWriter, r *http.Request) {
	cpuPercent, ramPercent := h.getSystemStats()

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	response := SystemStatsResponse{
		CPUPercent:    cpuPercent,
		RAMPercent:    ramPercent,
		Goroutines:    runtime.NumGoroutine(),
		HeapAllocMB:   float64(ms.HeapAlloc) / 1024 / 1024,
		UptimeSeconds: time.Since(h.startedAt).Seconds(),
		DataDirMB:     h.getDirSize(h.dataDir),
		Parameters:    h.parameters,
	}

	api.Write(w, r, http.StatusOK, api.NewEnvelope(response), h.log)
}

// HandleDatabaseStats handles GET /api/system/database/stats
func (h *SystemHandlers) HandleDatabaseStats(w http.ResponseWriter, r *http.Request) {
	response := DatabaseStatsResponse{
		Name:        h.birthsDB.Name(),
		Path:        h.birthsDB.Path(),
		LastChecked: time.Now().Format(time.RFC3339),
	}

	response.Healthy = h.birthsDB.HealthCheck(r.Context()) == nil

	stats, err := h.birthsDB.GetStats()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to read database stats")
	} else {
		response.Stats = stats
	}

	api.Write(w, r, http.StatusOK, api.NewEnvelope(response), h.log)
}

// getDirSize calculates total size of a directory in MB
func (h *SystemHandlers) getDirSize(dirPath string) float64 {
	if dirPath == "" {
		return 0
	}

	var totalSize int64
	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors
		}
		if !info.IsDir() {
			totalSize += info.Size()
		}
		return nil
	})
	if err != nil {
		h.log.Warn().Err(err).Str("dir", dirPath).Msg("Failed to calculate directory size")
		return 0
	}

	return float64(totalSize) / 1024 / 1024
}

// getSystemStats samples CPU over 100ms and reads RAM usage.
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}
