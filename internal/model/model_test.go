package model

import (
	"errors"
	"path/filepath"
	"testing"
)

var errFake = errors.New("fake fetch error")

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file.jpg", "normal-file.jpg"},
		{"file:with:colons.jpg", "file_with_colons.jpg"},
		{"file<with>brackets.jpg", "file_with_brackets.jpg"},
		{"file/with\\slashes.jpg", "file_with_slashes.jpg"},
		{"file|with|pipes.jpg", "file_with_pipes.jpg"},
		{"file?with*wildcards.jpg", "file_with_wildcards.jpg"},
		{"file\"with\"quotes.jpg", "file_with_quotes.jpg"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewItem_DefaultName(t *testing.T) {
	cfg := &OutputConfig{Dir: "/out"}
	item := NewItem(0, "0004", "http://example.com/a0004.jpg", cfg)

	want := filepath.Join("/out", "a0004.jpg")
	if item.Path != want {
		t.Errorf("Path = %q, want %q", item.Path, want)
	}
	if item.Token != "0004" || item.Index != 0 {
		t.Errorf("item = %+v", item)
	}
}

func TestNewItem_FormatPlaceholders(t *testing.T) {
	cfg := &OutputConfig{Dir: "/out", FileNameFormat: "{token}_{name}"}
	item := NewItem(3, "12", "http://example.com/img12.png", cfg)

	want := filepath.Join("/out", "12_img12.png")
	if item.Path != want {
		t.Errorf("Path = %q, want %q", item.Path, want)
	}
}

func TestNewItem_NoTrailingSegment(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"root path", "http://example.com/"},
		{"no path", "http://example.com"},
	}

	cfg := &OutputConfig{Dir: "/out"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := NewItem(0, "7", tt.url, cfg)
			want := filepath.Join("/out", "7")
			if item.Path != want {
				t.Errorf("Path = %q, want %q", item.Path, want)
			}
		})
	}
}

func TestNewItem_QueryIgnoredInName(t *testing.T) {
	cfg := &OutputConfig{Dir: "/out"}
	item := NewItem(0, "5", "http://example.com/a5.jpg?session=abc", cfg)

	want := filepath.Join("/out", "a5.jpg")
	if item.Path != want {
		t.Errorf("Path = %q, want %q", item.Path, want)
	}
}

func TestSummary(t *testing.T) {
	ok := Summary{Total: 3, Succeeded: 3}
	if !ok.Ok() {
		t.Error("summary with no failures should be Ok")
	}

	item := &Item{Token: "2", URL: "http://example.com/a2.jpg"}
	bad := Summary{
		Total:     3,
		Succeeded: 2,
		Failed:    1,
		Failures:  []FetchResult{{Item: item, Err: errFake}},
	}
	if bad.Ok() {
		t.Error("summary with a failure should not be Ok")
	}
	if bad.Failures[0].Succeeded() {
		t.Error("failed result should not report success")
	}
}
