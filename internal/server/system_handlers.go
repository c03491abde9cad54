package server

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/mavenwealth/optimizer/internal/database"
)

// SystemHandlers serves process and host health for the status endpoint.
type SystemHandlers struct {
	log     zerolog.Logger
	dataDir string
	fundsDB *database.DB
	started time.Time
}

// NewSystemHandlers creates system handlers
func NewSystemHandlers(log zerolog.Logger, dataDir string, fundsDB *database.DB) *SystemHandlers {
	return &SystemHandlers{
		log:     log.With().Str("handler", "system").Logger(),
		dataDir: dataDir,
		fundsDB: fundsDB,
		started: time.Now(),
	}
}

// HandleStatus handles GET /api/system/status
func (h *SystemHandlers) HandleStatus(w http.ResponseWriter, r *http.Request) {
	cpuPct, memPct := h.systemStats()

	dbStatus := "ok"
	if err := h.fundsDB.Conn().Ping(); err != nil {
		h.log.Warn().Err(err).Msg("Funds database ping failed")
		dbStatus = "unavailable"
	}

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"uptime_seconds": int64(time.Since(h.started).Seconds()),
			"cpu_percent":    cpuPct,
			"memory_percent": memPct,
			"goroutines":     runtime.NumGoroutine(),
			"data_dir_mb":    h.dirSizeMB(h.dataDir),
			"database":       dbStatus,
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// systemStats samples CPU and RAM usage percentages. The CPU sample uses a
// short interval so the endpoint stays responsive under polling.
func (h *SystemHandlers) systemStats() (float64, float64) {
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

// dirSizeMB calculates total size of a directory in MB
func (h *SystemHandlers) dirSizeMB(dirPath string) float64 {
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
