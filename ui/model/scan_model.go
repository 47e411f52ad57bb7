package model

import (
	"sync"
)

// ScanModel holds controller state shared between the Tk thread and the OCR
// worker. The zero value is usable. Concurrency-safe because the worker reads
// the screenshot path while the UI may replace it.
type ScanModel struct {
	mu             sync.RWMutex
	screenshotPath string
	language       string
	text           string
	scanning       bool
}

// NewScanModel returns a ScanModel with the given language selected.
func NewScanModel(language string) *ScanModel { return &ScanModel{language: language} }

// ScreenshotPath returns the current screenshot path, empty when none.
func (m *ScanModel) ScreenshotPath() string {
	if m == nil {
		return ""
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.screenshotPath
}

// SetScreenshotPath replaces the screenshot path. Use "" to clear.
func (m *ScanModel) SetScreenshotPath(p string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.screenshotPath = p
	m.mu.Unlock()
}

// Language returns the selected language display name.
func (m *ScanModel) Language() string {
	if m == nil {
		return ""
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.language
}

// SetLanguage stores the selected language display name.
func (m *ScanModel) SetLanguage(name string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.language = name
	m.mu.Unlock()
}

// Text returns the last text shown in the result area.
func (m *ScanModel) Text() string {
	if m == nil {
		return ""
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.text
}

// SetText records the text shown in the result area.
func (m *ScanModel) SetText(s string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.text = s
	m.mu.Unlock()
}

// Scanning reports whether a scan cycle (capture or OCR) is running.
func (m *ScanModel) Scanning() bool {
	if m == nil {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.scanning
}

// SetScanning stores the scanning flag.
func (m *ScanModel) SetScanning(b bool) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.scanning = b
	m.mu.Unlock()
}
