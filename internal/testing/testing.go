// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

// MockFetcher is a test double for [tasks.Fetcher] with configurable behavior.
type MockFetcher struct {
	MapURLFunc   func(hash string) string
	DownloadFunc func(ctx context.Context, url, dest string) (int64, error)

	// Calls records every URL passed to Download, in order.
	Calls []string
}

func (m *MockFetcher) MapURL(hash string) string {
	if m.MapURLFunc != nil {
		return m.MapURLFunc(hash)
	}
	return "https://cdn.example.test/" + hash + ".zip"
}

func (m *MockFetcher) Download(ctx context.Context, url, dest string) (int64, error) {
	m.Calls = append(m.Calls, url)
	if m.DownloadFunc != nil {
		return m.DownloadFunc(ctx, url, dest)
	}
	return 0, errors.New("download not configured")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertFileAbsent(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("File should not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// MustWriteFile writes content to dir/name, failing the test on error, and returns the path.
func MustWriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
	return path
}
