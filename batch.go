package grimbound

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ProgressFunc receives (current, total) after every attempted item,
// success or failure. current is strictly increasing and ends at
// exactly total.
type ProgressFunc func(current, total int)

// ErrorKind classifies a per-item batch failure.
type ErrorKind int

const (
	// KindSkipped marks a character with an empty name; no render was
	// attempted and its progress slots were consumed.
	KindSkipped ErrorKind = iota

	// KindCharacter marks a failed character token.
	KindCharacter

	// KindReminder marks a failed reminder token.
	KindReminder
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindSkipped:
		return "skipped"
	case KindCharacter:
		return "character"
	case KindReminder:
		return "reminder"
	default:
		return "unknown"
	}
}

// ItemFailure records one item that produced no token. Failures ride
// in the Report next to the successful tokens instead of living only
// in the log.
type ItemFailure struct {
	Kind      ErrorKind
	Character string
	Reminder  string
	Err       error
}

// Error implements the error interface.
func (f ItemFailure) Error() string {
	if f.Reminder != "" {
		return fmt.Sprintf("%s token %q/%q: %v", f.Kind, f.Character, f.Reminder, f.Err)
	}
	return fmt.Sprintf("%s token %q: %v", f.Kind, f.Character, f.Err)
}

// Unwrap exposes the underlying error for errors.Is/As.
func (f ItemFailure) Unwrap() error { return f.Err }

// Report is the outcome of one batch run: every token that rendered,
// plus a typed record of every item that did not. Both can be
// non-empty at once; an empty Tokens with no fatal error means the
// input was empty or everything failed, and Failures tells which.
type Report struct {
	Tokens   []*RenderedToken
	Failures []ItemFailure
}

// errEmptyName marks characters the orchestrator never renders.
var errEmptyName = errors.New("character has no name")

// GenerateAll renders the full token set for a character list: one
// trademark token first, then per character its role token followed
// by one token per reminder. Items are processed strictly in order so
// progress counts and filename counters are deterministic.
//
// Per-item failures are recorded in the report and the batch
// continues; only a fatal surface-allocation error aborts, and the
// returned report still carries everything built before it.
func (r *Renderer) GenerateAll(ctx context.Context, characters []CharacterRecord, onProgress ProgressFunc) (*Report, error) {
	total := 1
	for _, ch := range characters {
		total += 1 + len(ch.Reminders)
	}

	current := 0
	step := func() {
		current++
		if onProgress != nil {
			onProgress(current, total)
		}
	}

	names := newNamer()
	report := &Report{}

	tm, err := r.TrademarkToken(ctx)
	if err != nil {
		return report, fmt.Errorf("trademark token: %w", err)
	}
	tm.Filename = names.unique(sanitizeName(r.style.TrademarkName))
	report.Tokens = append(report.Tokens, tm)
	step()

	for _, ch := range characters {
		if strings.TrimSpace(ch.Name) == "" {
			Logger().Warn("skipping unnamed character", "id", ch.ID)
			report.Failures = append(report.Failures, ItemFailure{
				Kind:      KindSkipped,
				Character: ch.ID,
				Err:       errEmptyName,
			})
			step()
			for range ch.Reminders {
				step()
			}
			continue
		}

		// The character filename is assigned before rendering so
		// reminder filenames derive from it even when the role token
		// itself fails.
		base := names.unique(sanitizeName(ch.Name))

		tok, err := r.CharacterToken(ctx, ch)
		switch {
		case errors.Is(err, ErrNoSurface):
			return report, err
		case err != nil:
			Logger().Warn("character token failed", "character", ch.Name, "error", err)
			report.Failures = append(report.Failures, ItemFailure{
				Kind:      KindCharacter,
				Character: ch.Name,
				Err:       err,
			})
		default:
			tok.Filename = base
			report.Tokens = append(report.Tokens, tok)
		}
		step()

		for _, reminder := range ch.Reminders {
			rt, err := r.ReminderToken(ctx, ch, reminder)
			switch {
			case errors.Is(err, ErrNoSurface):
				return report, err
			case err != nil:
				Logger().Warn("reminder token failed", "character", ch.Name, "reminder", reminder, "error", err)
				report.Failures = append(report.Failures, ItemFailure{
					Kind:      KindReminder,
					Character: ch.Name,
					Reminder:  reminder,
					Err:       err,
				})
			default:
				rt.Filename = names.unique(base + "_" + sanitizeName(reminder))
				report.Tokens = append(report.Tokens, rt)
			}
			step()
		}
	}

	return report, nil
}

// sanitizeName reduces a display name to a filesystem-safe base name:
// ASCII letters, digits, and dashes survive, runs of anything else
// collapse to a single underscore.
func sanitizeName(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	out := strings.TrimSuffix(b.String(), "_")
	if out == "" {
		return "token"
	}
	return out
}

// namer hands out batch-unique filenames. The first use of a base is
// bare; later uses get a zero-padded two-digit counter suffix (_00,
// _01, ...). The used set guards against a literal name colliding
// with a generated suffix.
type namer struct {
	counts map[string]int
	used   map[string]bool
}

func newNamer() *namer {
	return &namer{
		counts: make(map[string]int),
		used:   make(map[string]bool),
	}
}

func (n *namer) unique(base string) string {
	for {
		c := n.counts[base]
		n.counts[base]++

		name := base
		if c > 0 {
			name = fmt.Sprintf("%s_%02d", base, c-1)
		}
		if !n.used[name] {
			n.used[name] = true
			return name
		}
	}
}
