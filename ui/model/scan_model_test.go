package model

import "testing"

func TestScanModel_ZeroValueAndNil(t *testing.T) {
	var m ScanModel
	if m.ScreenshotPath() != "" || m.Scanning() || m.Language() != "" {
		t.Fatalf("zero value should be empty")
	}
	var nilModel *ScanModel
	nilModel.SetScreenshotPath("x")
	nilModel.SetScanning(true)
	if nilModel.ScreenshotPath() != "" || nilModel.Scanning() {
		t.Fatalf("nil model should be inert")
	}
}

func TestScanModel_SetGet(t *testing.T) {
	m := NewScanModel("English")
	if m.Language() != "English" {
		t.Fatalf("language not set: %q", m.Language())
	}
	m.SetScreenshotPath("/tmp/latest_screenshot.png")
	m.SetLanguage("Korean")
	m.SetText("hello")
	m.SetScanning(true)
	if m.ScreenshotPath() != "/tmp/latest_screenshot.png" || m.Language() != "Korean" || m.Text() != "hello" || !m.Scanning() {
		t.Fatalf("unexpected state path=%q lang=%q text=%q scanning=%v", m.ScreenshotPath(), m.Language(), m.Text(), m.Scanning())
	}
	m.SetScreenshotPath("")
	if m.ScreenshotPath() != "" {
		t.Fatalf("path should clear")
	}
}
