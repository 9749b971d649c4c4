package crowns

// Ledger names a persisted crown counter.
type Ledger string

const (
	LedgerGerman Ledger = "german"
	LedgerShared Ledger = "shared"
)

// AllLedgers returns all ledgers in display order.
func AllLedgers() []Ledger {
	return []Ledger{LedgerGerman, LedgerShared}
}

// DisplayName returns a human-readable label for the ledger.
func (l Ledger) DisplayName() string {
	switch l {
	case LedgerGerman:
		return "Deutsch"
	case LedgerShared:
		return "Mathe & Rätsel"
	default:
		return string(l)
	}
}

// App identifies one of the games.
type App string

const (
	AppSyllables App = "syllables"
	AppMath      App = "math"
	AppLetters   App = "letters"
	AppSudoku    App = "sudoku"
)

// AllApps returns all games in menu order.
func AllApps() []App {
	return []App{AppSyllables, AppLetters, AppMath, AppSudoku}
}

// Ledger returns the ledger the app's crowns are booked on. The
// syllable trainer keeps its own counter; the others share one.
func (a App) Ledger() Ledger {
	if a == AppSyllables {
		return LedgerGerman
	}
	return LedgerShared
}

// DisplayName returns a human-readable label for the app.
func (a App) DisplayName() string {
	switch a {
	case AppSyllables:
		return "Silben"
	case AppMath:
		return "Mathe"
	case AppLetters:
		return "Buchstaben"
	case AppSudoku:
		return "Sudoku"
	default:
		return string(a)
	}
}

// Icon returns the display icon for the app.
func (a App) Icon() string {
	switch a {
	case AppSyllables:
		return "🗣️"
	case AppMath:
		return "🔢"
	case AppLetters:
		return "🔤"
	case AppSudoku:
		return "🧩"
	default:
		return "✦"
	}
}

// Icon is the crown glyph.
const Icon = "👑"
