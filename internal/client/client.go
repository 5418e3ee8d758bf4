package client

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ryanthedev/cycle-cli/internal/desktop"
	"github.com/ryanthedev/cycle-cli/internal/models"
	"github.com/ryanthedev/cycle-cli/internal/types"
)

const (
	DefaultSocketPath = "/tmp/cycle-bridge.sock"
	DefaultTimeout    = 10 * time.Second
)

// Client talks to the accessibility automation bridge over its Unix
// socket. It implements desktop.Automator and desktop.Notifier.
type Client struct {
	conn *Connection
}

var (
	_ desktop.Automator = (*Client)(nil)
	_ desktop.Notifier  = (*Client)(nil)
)

// NewClient creates a new automation bridge client
func NewClient(socketPath string, timeout time.Duration) *Client {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		conn: NewConnection(socketPath, timeout),
	}
}

// Connect establishes connection to the bridge
func (c *Client) Connect() error {
	return c.conn.Connect()
}

// Close closes the connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// request is a helper to send a request and get the result map
func (c *Client) request(ctx context.Context, method string, params map[string]interface{}) (map[string]interface{}, error) {
	if !c.conn.IsConnected() {
		if err := c.Connect(); err != nil {
			return nil, err
		}
	}

	req := models.NewRequest(uuid.New().String(), method, params)
	resp, err := c.conn.SendRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, fmt.Errorf("bridge error: %s", resp.GetError())
	}

	return resp.Result, nil
}

// Ping tests bridge connectivity
func (c *Client) Ping(ctx context.Context) (map[string]interface{}, error) {
	return c.request(ctx, "ping", nil)
}

// ListProcesses returns the running application processes
func (c *Client) ListProcesses(ctx context.Context) ([]types.Process, error) {
	result, err := c.request(ctx, "listProcesses", nil)
	if err != nil {
		return nil, err
	}

	raw, ok := result["processes"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("malformed listProcesses result")
	}

	procs := make([]types.Process, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		procs = append(procs, processFromResult(m))
	}
	return procs, nil
}

// FrontmostProcess returns the currently focused application
func (c *Client) FrontmostProcess(ctx context.Context) (types.Process, error) {
	result, err := c.request(ctx, "frontmostProcess", nil)
	if err != nil {
		return types.Process{}, err
	}

	proc := processFromResult(result)
	if proc.Name == "" {
		return types.Process{}, fmt.Errorf("bridge reported no frontmost process")
	}
	proc.Frontmost = true
	return proc, nil
}

// LookupProcess finds a running process by name
func (c *Client) LookupProcess(ctx context.Context, name string) (types.Process, error) {
	result, err := c.request(ctx, "getProcess", map[string]interface{}{
		"name": name,
	})
	if err != nil {
		return types.Process{}, err
	}

	proc := processFromResult(result)
	if proc.Name == "" {
		return types.Process{}, fmt.Errorf("process not found: %s", name)
	}
	return proc, nil
}

// WindowGeometry reads the bounds of the process's front window
func (c *Client) WindowGeometry(ctx context.Context, proc types.Process) (types.Rect, error) {
	result, err := c.request(ctx, "getWindowGeometry", map[string]interface{}{
		"name": proc.Name,
		"pid":  proc.PID,
	})
	if err != nil {
		return types.Rect{}, err
	}

	x, okX := floatField(result, "x")
	y, okY := floatField(result, "y")
	w, okW := floatField(result, "width")
	h, okH := floatField(result, "height")
	if !okX || !okY || !okW || !okH {
		return types.Rect{}, fmt.Errorf("malformed getWindowGeometry result")
	}

	return types.Rect{X: x, Y: y, Width: w, Height: h}, nil
}

// SetWindowPosition moves the process's front window
func (c *Client) SetWindowPosition(ctx context.Context, proc types.Process, pos types.Point) error {
	_, err := c.request(ctx, "setWindowPosition", map[string]interface{}{
		"name": proc.Name,
		"pid":  proc.PID,
		"x":    pos.X,
		"y":    pos.Y,
	})
	return err
}

// SetWindowSize resizes the process's front window
func (c *Client) SetWindowSize(ctx context.Context, proc types.Process, width, height float64) error {
	_, err := c.request(ctx, "setWindowSize", map[string]interface{}{
		"name":   proc.Name,
		"pid":    proc.PID,
		"width":  width,
		"height": height,
	})
	return err
}

// ActivateApp brings the named application to the front
func (c *Client) ActivateApp(ctx context.Context, name string) error {
	_, err := c.request(ctx, "activateApp", map[string]interface{}{
		"name": name,
	})
	return err
}

// Notify shows a user-visible notification via the bridge
func (c *Client) Notify(ctx context.Context, message string) error {
	_, err := c.request(ctx, "notify", map[string]interface{}{
		"message": message,
	})
	return err
}

// processFromResult decodes a process object from a result map
func processFromResult(m map[string]interface{}) types.Process {
	proc := types.Process{}
	if name, ok := m["name"].(string); ok {
		proc.Name = name
	}
	if pid, ok := floatField(m, "pid"); ok {
		proc.PID = int(pid)
	}
	if front, ok := m["frontmost"].(bool); ok {
		proc.Frontmost = front
	}
	return proc
}

// floatField extracts a numeric field from a result map
func floatField(m map[string]interface{}, key string) (float64, bool) {
	v, ok := m[key].(float64)
	return v, ok
}
