package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// _NET_WM_STATE actions.
const (
	stateRemove = 0
	stateAdd    = 1
)

// Source indication for EWMH client messages: a normal application.
const sourceApplication = 1

func (c *Connection) atom(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(c.XUtil.Conn(), false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to intern %s: %w", name, err)
	}
	return reply.Atom, nil
}

// sendRootMessage sends an EWMH client message about win to the root
// window, where the window manager listens for it.
//
// The message is built by hand; the xgbutil ewmh request helpers mix int
// and uint payloads and have been seen to panic.
func (c *Connection) sendRootMessage(win xproto.Window, msgType string, data ...uint32) error {
	typ, err := c.atom(msgType)
	if err != nil {
		return err
	}
	payload := make([]uint32, 5)
	copy(payload, data)

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   typ,
		Data:   xproto.ClientMessageDataUnionData32New(payload),
	}
	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		c.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}
