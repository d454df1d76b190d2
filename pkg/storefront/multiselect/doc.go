// Package multiselect provides a controlled multi-value picker for
// bubbletea programs: a trigger line presenting the current selection
// as removable badges, and a dropdown overlay listing a catalog of
// options.
//
// The control never owns the selection. Toggling an option computes the
// next selection and emits it as a ChangedMsg (a full replacement); the
// host stores whatever it decides to keep and pushes it back with
// SetValue. Selection values the catalog cannot resolve are skipped
// silently when rendering badges, and the placeholder appears only
// while the selection itself is empty.
//
// # Quick Start
//
//	picker := multiselect.New("brands",
//	    multiselect.WithPlaceholder("Выберите бренды"),
//	    multiselect.WithMaxVisible(8),
//	)
//	picker.Focus()
//	picker.SetOptions(brandOptions)
//	picker.SetValue(profileBrandIDs)
//
//	// In Update():
//	case multiselect.ChangedMsg:
//	    if msg.ID == picker.ID() {
//	        selection = msg.Value
//	        picker.SetValue(msg.Value)
//	        return m, saveSelection(msg.Value)
//	    }
//	default:
//	    picker, cmd = picker.Update(msg)
//
// # Keys
//
// Closed: enter/space opens the overlay; left/right move badge focus;
// backspace/delete/x remove the focused badge (the last one when none
// is focused) without opening the overlay.
//
// Open: up/down move the cursor; enter/space toggle the row under the
// cursor and close the overlay (every toggle closes it, deselections
// included); esc dismisses without a toggle; printable characters narrow
// the rows by fuzzy match and backspace edits that filter.
//
// # Options
//
//   - WithPlaceholder(s string) - muted text for the empty selection
//   - WithMaxVisible(n int) - overlay rows shown at once (default: 5)
//   - WithWidth(w int) - outer width of trigger and overlay (default: 40)
//   - WithRenderOption(f RenderFunc) - override the overlay row body
//   - WithRenderBadge(f RenderFunc) - override the badge body
package multiselect
