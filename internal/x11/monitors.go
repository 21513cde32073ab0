package x11

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/hostwin/internal/platform"
)

// GetMonitors retrieves all active monitors using XRandR, ordered by CRTC.
func (c *Connection) GetMonitors() ([]platform.Display, error) {
	// Initialize RandR if not already done
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []platform.Display

	// Query each CRTC for active monitors
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			outputName = string(outputInfo.Name)
		}

		monitors = append(monitors, platform.Display{
			ID:   i,
			Name: outputName,
			Bounds: platform.Rect{
				X:      int(crtcInfo.X),
				Y:      int(crtcInfo.Y),
				Width:  int(crtcInfo.Width),
				Height: int(crtcInfo.Height),
			},
		})
	}

	sort.Slice(monitors, func(i, j int) bool {
		return monitors[i].ID < monitors[j].ID
	})

	if len(monitors) == 0 {
		// No RandR outputs (nested or headless servers): treat the root
		// window as a single monitor.
		root, err := c.rootBounds()
		if err != nil {
			return nil, err
		}
		monitors = append(monitors, platform.Display{ID: 0, Name: "root", Bounds: root})
	}

	return monitors, nil
}

// MonitorForWindow returns the monitor a window lives on: the one holding
// its centre, else the one it overlaps most.
func (c *Connection) MonitorForWindow(windowID xproto.Window) (platform.Display, error) {
	monitors, err := c.GetMonitors()
	if err != nil {
		return platform.Display{}, err
	}
	rect, err := c.WindowRect(windowID)
	if err != nil {
		return platform.Display{}, err
	}
	mon, ok := platform.NearestDisplay(monitors, rect)
	if !ok {
		return platform.Display{}, fmt.Errorf("no monitors found")
	}
	return mon, nil
}

func (c *Connection) rootBounds() (platform.Rect, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return platform.Rect{}, fmt.Errorf("failed to get root geometry: %w", err)
	}
	return platform.Rect{Width: int(geom.Width), Height: int(geom.Height)}, nil
}
