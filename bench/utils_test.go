package chash_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/theflywheel/chash"
)

// BenchmarkMetrics represents metrics for a single benchmark
type BenchmarkMetrics struct {
	Name        string             `json:"name"`
	Category    string             `json:"category"`
	Operations  int                `json:"operations"`
	NsPerOp     float64            `json:"ns_per_op"`
	AllocsPerOp int                `json:"allocs_per_op,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
}

// BenchmarkSummary represents all benchmark results
type BenchmarkSummary struct {
	Timestamp string             `json:"timestamp"`
	CommitID  string             `json:"commit_id"`
	Branch    string             `json:"branch"`
	GoVersion string             `json:"go_version"`
	Results   []BenchmarkMetrics `json:"results"`
}

// hashFuncs are the hash functions every scale benchmark is run with
var hashFuncs = []struct {
	name string
	fn   chash.HashFunc
}{
	{"FNV1a", chash.FNV1a},
	{"XXHash", chash.XXHash},
}

// getMemoryStats returns the current memory stats as a map
func getMemoryStats() map[string]float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return map[string]float64{
		"alloc_mb": float64(m.Alloc) / (1024 * 1024),
		"sys_mb":   float64(m.Sys) / (1024 * 1024),
	}
}

// recordStats stores the chain shape of tbl in metrics
func recordStats(metrics *BenchmarkMetrics, tbl *chash.Table) {
	st := tbl.Stats()
	metrics.Metrics["load_factor"] = st.LoadFactor()
	metrics.Metrics["longest_chain"] = float64(st.LongestChain)
	metrics.Metrics["used_bucket_ratio"] = float64(st.UsedBuckets) / float64(st.Buckets)
}

// cleanupMetrics removes per-batch progress metrics
func cleanupMetrics(metrics *BenchmarkMetrics) {
	if metrics.Metrics == nil {
		return
	}

	filteredMetrics := make(map[string]float64)
	for key, value := range metrics.Metrics {
		if strings.HasPrefix(key, "batch_insert_") ||
			strings.HasPrefix(key, "memory_mb_") {
			continue
		}
		filteredMetrics[key] = value
	}

	metrics.Metrics = filteredMetrics
}

// gitInfo reads the current branch and short commit from the repository root
func gitInfo(repoRoot string) (commitID, branch string) {
	commitID, branch = "local", "dev"

	gitHead, err := os.ReadFile(filepath.Join(repoRoot, ".git", "HEAD"))
	if err != nil {
		return commitID, branch
	}
	headContent := strings.TrimSpace(string(gitHead))
	if !strings.HasPrefix(headContent, "ref: refs/heads/") {
		return commitID, branch
	}
	branch = strings.TrimPrefix(headContent, "ref: refs/heads/")

	refPath := strings.TrimPrefix(headContent, "ref: ")
	if commitData, err := os.ReadFile(filepath.Join(repoRoot, ".git", refPath)); err == nil {
		commitID = strings.TrimSpace(string(commitData))
		if len(commitID) >= 8 {
			commitID = commitID[:8]
		}
	}
	return commitID, branch
}

// saveBenchmarkResult saves a benchmark result to the benchmark_history directory
func saveBenchmarkResult(metrics BenchmarkMetrics, resultsFile string) error {
	cleanupMetrics(&metrics)

	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// bench is one level below the repository root
	repoRoot := filepath.Dir(currentDir)

	benchmarkDir := filepath.Join(repoRoot, "benchmark_history")
	if err := os.MkdirAll(benchmarkDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	commitID, branch := gitInfo(repoRoot)
	summary := BenchmarkSummary{
		Timestamp: time.Now().Format(time.RFC3339),
		CommitID:  commitID,
		Branch:    branch,
		GoVersion: runtime.Version(),
		Results:   []BenchmarkMetrics{metrics},
	}

	// Merge with existing results if available
	latestFile := filepath.Join(benchmarkDir, resultsFile)
	if existingData, err := os.ReadFile(latestFile); err == nil {
		var existingSummary BenchmarkSummary
		if err := json.Unmarshal(existingData, &existingSummary); err == nil {
			summary.Results = append(existingSummary.Results, metrics)
		}
	}

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if err := os.WriteFile(latestFile, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	fmt.Printf("Benchmark results saved to: %s\n", latestFile)
	return nil
}
