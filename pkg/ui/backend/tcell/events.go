package tcell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/tessera/pkg/ui/backend"
	"github.com/odvcencio/tessera/pkg/ui/event"
)

// PollEvent blocks until an event is available. Bracketed paste arrives as
// a single PasteEvent. It returns nil once the screen is finalized.
//
// PollEvent may run on its own goroutine while another goroutine draws,
// but only after the screen is initialized.
func (b *Backend) PollEvent() event.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch e := ev.(type) {
		case *tcell.EventPaste:
			if e.Start() {
				b.inPaste = true
				b.paste.Reset()
				continue
			}
			if e.End() {
				b.inPaste = false
				text := b.paste.String()
				b.paste.Reset()
				if text != "" {
					return event.PasteEvent{Text: text}
				}
				continue
			}

		case *tcell.EventKey:
			if b.inPaste {
				switch e.Key() {
				case tcell.KeyRune:
					b.paste.WriteRune(e.Rune())
				case tcell.KeyEnter:
					b.paste.WriteRune('\n')
				case tcell.KeyTab:
					b.paste.WriteRune('\t')
				}
				continue
			}

		case *tcell.EventMouse:
			me := b.convertMouse(e)
			if me.Action == event.MouseMove && !b.mouseMotion {
				continue
			}
			return me
		}

		if out := convertEvent(ev); out != nil {
			return out
		}
	}
}

// PostEvent injects an event into the queue. Paste events are not
// supported and are dropped.
func (b *Backend) PostEvent(ev event.Event) error {
	if tev := reverseConvertEvent(ev); tev != nil {
		return b.screen.PostEvent(tev)
	}
	return nil
}

// convertEvent converts tcell key and resize events. Other events map to nil.
func convertEvent(ev tcell.Event) event.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		key, r, mods := convertKey(e.Key(), e.Rune(), convertMods(e.Modifiers()))
		return event.KeyEvent{Key: key, Rune: r, Mods: mods}
	case *tcell.EventResize:
		w, h := e.Size()
		return event.ResizeEvent{Width: clampDim(w), Height: clampDim(h)}
	default:
		return nil
	}
}

// convertMouse tracks the held button so releases and drags can be told
// apart; tcell only reports which buttons are currently down.
func (b *Backend) convertMouse(e *tcell.EventMouse) event.MouseEvent {
	x, y := e.Position()
	buttons := e.Buttons()
	ev := event.MouseEvent{
		X:    clampDim(x),
		Y:    clampDim(y),
		Mods: convertMods(e.Modifiers()),
	}

	if wheel := convertWheel(buttons); wheel != event.MouseNone {
		ev.Button = wheel
		ev.Action = event.MouseScroll
		return ev
	}

	button := convertMouseButton(buttons)
	switch {
	case button != event.MouseNone && button == b.held:
		ev.Button, ev.Action = button, event.MouseDrag
	case button != event.MouseNone:
		ev.Button, ev.Action = button, event.MousePress
	case b.held != event.MouseNone:
		ev.Button, ev.Action = b.held, event.MouseRelease
	default:
		ev.Action = event.MouseMove
	}
	b.held = button
	return ev
}

func convertMods(m tcell.ModMask) event.Modifiers {
	var mods event.Modifiers
	if m&tcell.ModShift != 0 {
		mods |= event.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= event.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= event.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= event.ModMeta
	}
	return mods
}

// convertKey maps a tcell key. Control letters become the lower-case rune
// with ModCtrl set, so callers match them the same way on every backend.
func convertKey(k tcell.Key, r rune, mods event.Modifiers) (event.Key, rune, event.Modifiers) {
	switch k {
	case tcell.KeyRune:
		return event.KeyRune, r, mods
	case tcell.KeyEnter:
		return event.KeyEnter, 0, mods
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return event.KeyBackspace, 0, mods
	case tcell.KeyTab:
		return event.KeyTab, 0, mods
	case tcell.KeyBacktab:
		return event.KeyBackTab, 0, mods
	case tcell.KeyEscape:
		return event.KeyEscape, 0, mods
	case tcell.KeyUp:
		return event.KeyUp, 0, mods
	case tcell.KeyDown:
		return event.KeyDown, 0, mods
	case tcell.KeyLeft:
		return event.KeyLeft, 0, mods
	case tcell.KeyRight:
		return event.KeyRight, 0, mods
	case tcell.KeyHome:
		return event.KeyHome, 0, mods
	case tcell.KeyEnd:
		return event.KeyEnd, 0, mods
	case tcell.KeyPgUp:
		return event.KeyPageUp, 0, mods
	case tcell.KeyPgDn:
		return event.KeyPageDown, 0, mods
	case tcell.KeyDelete:
		return event.KeyDelete, 0, mods
	case tcell.KeyInsert:
		return event.KeyInsert, 0, mods
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return event.KeyF1 + event.Key(k-tcell.KeyF1), 0, mods
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return event.KeyRune, 'a' + rune(k-tcell.KeyCtrlA), mods | event.ModCtrl
	}
	return event.KeyNone, 0, mods
}

func convertWheel(buttons tcell.ButtonMask) event.MouseButton {
	switch {
	case buttons&tcell.WheelUp != 0:
		return event.MouseWheelUp
	case buttons&tcell.WheelDown != 0:
		return event.MouseWheelDown
	case buttons&tcell.WheelLeft != 0:
		return event.MouseWheelLeft
	case buttons&tcell.WheelRight != 0:
		return event.MouseWheelRight
	}
	return event.MouseNone
}

func convertMouseButton(buttons tcell.ButtonMask) event.MouseButton {
	switch {
	case buttons&tcell.ButtonPrimary != 0:
		return event.MouseLeft
	case buttons&tcell.ButtonMiddle != 0:
		return event.MouseMiddle
	case buttons&tcell.ButtonSecondary != 0:
		return event.MouseRight
	}
	return event.MouseNone
}

// reverseConvertEvent converts an event.Event to a tcell.Event for PostEvent.
func reverseConvertEvent(ev event.Event) tcell.Event {
	switch e := ev.(type) {
	case event.ResizeEvent:
		return tcell.NewEventResize(int(e.Width), int(e.Height))
	case event.KeyEvent:
		if k, ok := reverseKey(e); ok {
			return tcell.NewEventKey(k, e.Rune, reverseMods(e.Mods))
		}
	case event.MouseEvent:
		return tcell.NewEventMouse(int(e.X), int(e.Y), reverseButtons(e), reverseMods(e.Mods))
	}
	return nil
}

func reverseKey(e event.KeyEvent) (tcell.Key, bool) {
	switch e.Key {
	case event.KeyRune:
		return tcell.KeyRune, true
	case event.KeyEnter:
		return tcell.KeyEnter, true
	case event.KeyBackspace:
		return tcell.KeyBackspace2, true
	case event.KeyTab:
		return tcell.KeyTab, true
	case event.KeyBackTab:
		return tcell.KeyBacktab, true
	case event.KeyEscape:
		return tcell.KeyEscape, true
	case event.KeyUp:
		return tcell.KeyUp, true
	case event.KeyDown:
		return tcell.KeyDown, true
	case event.KeyLeft:
		return tcell.KeyLeft, true
	case event.KeyRight:
		return tcell.KeyRight, true
	case event.KeyHome:
		return tcell.KeyHome, true
	case event.KeyEnd:
		return tcell.KeyEnd, true
	case event.KeyPageUp:
		return tcell.KeyPgUp, true
	case event.KeyPageDown:
		return tcell.KeyPgDn, true
	case event.KeyDelete:
		return tcell.KeyDelete, true
	case event.KeyInsert:
		return tcell.KeyInsert, true
	}
	if e.Key >= event.KeyF1 && e.Key <= event.KeyF12 {
		return tcell.KeyF1 + tcell.Key(e.Key-event.KeyF1), true
	}
	return 0, false
}

func reverseMods(m event.Modifiers) tcell.ModMask {
	var mask tcell.ModMask
	if m.Contains(event.ModShift) {
		mask |= tcell.ModShift
	}
	if m.Contains(event.ModCtrl) {
		mask |= tcell.ModCtrl
	}
	if m.Contains(event.ModAlt) {
		mask |= tcell.ModAlt
	}
	if m.Contains(event.ModMeta) {
		mask |= tcell.ModMeta
	}
	return mask
}

func reverseButtons(e event.MouseEvent) tcell.ButtonMask {
	if e.Action == event.MouseRelease || e.Action == event.MouseMove {
		return tcell.ButtonNone
	}
	switch e.Button {
	case event.MouseLeft:
		return tcell.ButtonPrimary
	case event.MouseMiddle:
		return tcell.ButtonMiddle
	case event.MouseRight:
		return tcell.ButtonSecondary
	case event.MouseWheelUp:
		return tcell.WheelUp
	case event.MouseWheelDown:
		return tcell.WheelDown
	case event.MouseWheelLeft:
		return tcell.WheelLeft
	case event.MouseWheelRight:
		return tcell.WheelRight
	}
	return tcell.ButtonNone
}

var _ backend.EventSource = (*Backend)(nil)
