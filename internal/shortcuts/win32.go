package shortcuts

// Window messages and codes understood by FromWin32Message. Kept here
// rather than in the win32 binding so translation is testable everywhere.
const (
	wmKeyDown         = 0x0100
	wmNCLButtonDblClk = 0x00A3
	wmLButtonDblClk   = 0x0203

	vkEscape = 0x1B
	vkF11    = 0x7A

	htCaption = 2
)

// FromWin32Message translates a window message into an Event. ok is false
// for messages the handler never looks at.
func FromWin32Message(msg uint32, wparam uintptr) (ev Event, ok bool) {
	switch msg {
	case wmKeyDown:
		switch wparam {
		case vkF11:
			return KeyDown(KeyToggle), true
		case vkEscape:
			return KeyDown(KeyExit), true
		}
	case wmNCLButtonDblClk:
		hit := HitOther
		if wparam == htCaption {
			hit = HitCaption
		}
		return Event{Kind: KindNonClientDoubleClick, Hit: hit}, true
	case wmLButtonDblClk:
		return Event{Kind: KindDoubleClick}, true
	}
	return Event{}, false
}
