package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalEntries = 64000 // Total number of access log lines to generate
)

var (
	apiKeys    = []string{"e3ea", "8kzr", "2jdc", "ko1x", "qwer"}
	services   = []string{"knowledge", "news", "blog", "vclip", "book", "image"}
	browsers   = []string{"IE", "Firefox", "Safari", "Chrome", "Opera"}
	statuses   = []string{"200", "200", "200", "404", "200", "500", "200", "200"}
	datePrefix = "2012-06-10"
)

// ### End - fixed configs

type expectedCounts struct {
	apiKeys  map[string]int
	services map[string]int
	browsers map[string]int
	total    int
}

// main runs the e2e scenario: 001_basic_usage_report
//
// This scenario generates a large access log mixing qualifying requests, non-200 requests and
// malformed lines, runs the analyzer command against it and compares the written report with
// a report computed independently from the generated data.
//
// What it tests:
//   - Line grammar matching and exclusion of malformed lines
//   - Filtering of non-200 requests
//   - Concurrent aggregation across all analysis workers
//   - Ranking, tie-breaking and percentage formatting of the report
//   - Exit code 0 and atomic replacement of a previous report
func main() {
	// these configs can be changed to run the scenario
	workers := 8                  // Number of analysis workers
	garbageEvery := 97            // Every Nth line is malformed
	scenarioDir := ".tmp/e2e-001" // Scenario working directory relative to project root
	wantCleanScenarioDir := true  // If true, clean up the scenario directory before running

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	workDir := filepath.Join(projectRoot, scenarioDir)
	if wantCleanScenarioDir {
		fmt.Printf("Cleaning scenario directory: %s\n", workDir)
		if err := os.RemoveAll(workDir); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean scenario directory: %v\n", err)
		}
	}
	if err := os.MkdirAll(workDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to create scenario directory: %v\n", err)
		os.Exit(1)
	}

	inputPath := filepath.Join(workDir, "input.log")
	outputPath := filepath.Join(workDir, "output.log")

	fmt.Println("Starting e2e scenario: 001_basic_usage_report")
	fmt.Printf("TOTAL_ENTRIES: %d\n", totalEntries)
	fmt.Printf("WORKERS: %d\n", workers)
	fmt.Printf("GARBAGE_EVERY: %d\n", garbageEvery)
	fmt.Printf("INPUT_PATH: %s\n", inputPath)
	fmt.Printf("OUTPUT_PATH: %s\n", outputPath)
	fmt.Println()

	fmt.Printf("Generating %d access log lines...\n", totalEntries)
	expected, err := generateAccessLog(inputPath, garbageEvery)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to generate access log: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated access log with %d qualifying requests\n", expected.total)

	if err := os.WriteFile(outputPath, []byte("stale report\n"), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to seed previous report: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Running analyzer...")
	cmd := exec.Command("go", "run", "./cmd/analyzer")
	cmd.Dir = projectRoot
	cmd.Env = append(os.Environ(),
		"APIUSAGE_LOG_LEVEL=error",
		"APIUSAGE_INPUT_PATH="+inputPath,
		"APIUSAGE_OUTPUT_PATH="+outputPath,
		fmt.Sprintf("APIUSAGE_ANALYSIS_WORKERS=%d", workers),
		"APIUSAGE_REPORT_LOCALE=en",
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Analyzer failed: %v\n", err)
		os.Exit(1)
	}

	got, err := os.ReadFile(outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to read report: %v\n", err)
		os.Exit(1)
	}

	want := renderExpected(expected)
	if string(got) != want {
		fmt.Fprintf(os.Stderr, "ERROR: Report mismatch\n=== want ===\n%s=== got ===\n%s", want, got)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("=== Report ===")
	fmt.Print(string(got))
	fmt.Println("Scenario completed successfully")
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("could not find go.mod file, run from the project root")
}

func generateAccessLog(path string, garbageEvery int) (*expectedCounts, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	expected := &expectedCounts{
		apiKeys:  make(map[string]int),
		services: make(map[string]int),
		browsers: make(map[string]int),
	}

	w := bufio.NewWriter(file)
	for i := 0; i < totalEntries; i++ {
		if i%garbageEvery == 0 {
			fmt.Fprintf(w, "[200][http://apis.daum.net/search/broken?apikey=%d][Chrome]\n", i)
			continue
		}

		// skewed so that rankings are stable: lower indices appear more often
		apiKey := apiKeys[(i*i)%len(apiKeys)]
		service := services[(i/3)%len(services)]
		if i%11 == 0 {
			service = services[0]
		}
		browser := browsers[(i/7)%len(browsers)]
		status := statuses[i%len(statuses)]

		fmt.Fprintf(w, "[%s][http://apis.daum.net/search/%s?apikey=%s&q=query-%d][%s][%s %02d:%02d:%02d]\n",
			status, service, apiKey, i, browser, datePrefix, (i/3600)%24, (i/60)%60, i%60)

		if status != "200" {
			continue
		}
		expected.apiKeys[apiKey]++
		expected.services[service]++
		expected.browsers[browser]++
		expected.total++
	}

	return expected, w.Flush()
}

type ranked struct {
	key   string
	count int
}

func rank(counts map[string]int) []ranked {
	out := make([]ranked, 0, len(counts))
	for k, v := range counts {
		out = append(out, ranked{key: k, count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	return out
}

func renderExpected(expected *expectedCounts) string {
	var sb strings.Builder

	topKey := rank(expected.apiKeys)[0]
	fmt.Fprintf(&sb, "1. Top API key: %s (requests: %d)\n", topKey.key, topKey.count)

	sb.WriteString("2. Top 3 API services:\n")
	for i, s := range rank(expected.services) {
		if i == 3 {
			break
		}
		fmt.Fprintf(&sb, "   %s: %d\n", s.key, s.count)
	}

	sb.WriteString("3. Browser usage:\n")
	names := make([]string, 0, len(expected.browsers))
	for name := range expected.browsers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		pct := float64(expected.browsers[name]) / float64(expected.total) * 100
		fmt.Fprintf(&sb, "   %s: %.2f%%\n", name, pct)
	}

	return sb.String()
}
