package statusbar

import (
	"strings"
	"testing"
	"time"

	"github.com/riordanpawley/finboard/internal/types"
	"github.com/riordanpawley/finboard/internal/ui/styles"
)

func TestStatusBar_RenderNormalMode(t *testing.T) {
	style := styles.New()
	sb := New(types.ModeNormal, 160, style)

	result := sb.Render()

	if !strings.Contains(result, "NORMAL") {
		t.Errorf("Expected status bar to contain 'NORMAL', got: %s", result)
	}
	if !strings.Contains(result, "h/l: bulan") {
		t.Errorf("Expected status bar to contain month navigation hint, got: %s", result)
	}
	if !strings.Contains(result, "/: cari") {
		t.Errorf("Expected status bar to contain search hint, got: %s", result)
	}
}

func TestStatusBar_RenderSearchMode(t *testing.T) {
	style := styles.New()
	sb := New(types.ModeSearch, 160, style)

	result := sb.Render()

	if !strings.Contains(result, "SEARCH") {
		t.Errorf("Expected status bar to contain 'SEARCH', got: %s", result)
	}
	if !strings.Contains(result, "Esc: batal") {
		t.Errorf("Expected status bar to contain cancel hint, got: %s", result)
	}
}

func TestStatusBar_MonthAndLoaded(t *testing.T) {
	style := styles.New()
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

	sb := New(types.ModeNormal, 200, style).
		WithMonth("Oktober 2026").
		WithLoaded(now.Add(-5*time.Minute), now)

	result := sb.Render()

	if !strings.Contains(result, "Oktober 2026") {
		t.Errorf("Expected month label, got: %s", result)
	}
	if !strings.Contains(result, "diperbarui 5 menit lalu") {
		t.Errorf("Expected relative load time, got: %s", result)
	}
}

func TestStatusBar_NoLoadTime(t *testing.T) {
	style := styles.New()
	result := New(types.ModeDialog, 120, style).Render()

	if strings.Contains(result, "diperbarui") {
		t.Errorf("Load time should be omitted when unknown, got: %s", result)
	}
}

func TestGetHints(t *testing.T) {
	tests := []struct {
		mode types.Mode
		want string
	}{
		{types.ModeNormal, "h/l: bulan  /: cari  e: ekspor  y: salin  ?: bantuan  q: keluar"},
		{types.ModeSearch, "Ketik untuk mencari  Enter: selesai  Esc: batal"},
		{types.ModeDialog, "Esc: tutup"},
		{types.Mode(99), ""},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := GetHints(tt.mode); got != tt.want {
				t.Errorf("GetHints(%v) = %q, want %q", tt.mode, got, tt.want)
			}
		})
	}
}
