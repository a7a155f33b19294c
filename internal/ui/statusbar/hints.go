package statusbar

import "github.com/riordanpawley/finboard/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "h/l: bulan  /: cari  e: ekspor  y: salin  ?: bantuan  q: keluar"
	case types.ModeSearch:
		return "Ketik untuk mencari  Enter: selesai  Esc: batal"
	case types.ModeDialog:
		return "Esc: tutup"
	default:
		return ""
	}
}
