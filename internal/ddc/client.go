package ddc

import (
	"context"
	"fmt"
	"strconv"

	"monitorctl/internal/errors"
	"monitorctl/internal/logger"
)

// Client exposes the monitor control operations over an Invoker. It
// holds no mutable state between calls; every operation re-invokes the
// backend and parses its output fresh.
type Client struct {
	inv Invoker
	log logger.Logger
}

// NewClient creates a client over the given invoker. A nil logger
// falls back to Noop.
func NewClient(inv Invoker, log logger.Logger) *Client {
	if log == nil {
		log = logger.Noop()
	}
	return &Client{inv: inv, log: log}
}

// ListMonitors detects attached DDC-capable displays. Zero detected
// monitors is a distinct, expected failure: the usual cause is a
// missing i2c permission rather than a broken backend.
func (c *Client) ListMonitors(ctx context.Context) ([]Monitor, error) {
	output, err := c.inv.Invoke(ctx, []string{"detect", "--brief"}, true)
	if err != nil {
		return nil, err
	}

	monitors := parseDetectOutput(output)
	if len(monitors) == 0 {
		return nil, errors.New(errors.ErrNotFound,
			"no DDC-capable monitors detected",
			"Ensure your user has permission to access the /dev/i2c devices")
	}

	c.log.Debug("detected %d monitor(s)", len(monitors))
	return monitors, nil
}

// GetVCP reads the current and maximum value of one feature code on
// the given display.
func (c *Client) GetVCP(ctx context.Context, displayID string, code byte) (current, maximum int, err error) {
	args := []string{"--display", displayID, "getvcp", formatCode(code)}
	output, err := c.inv.Invoke(ctx, args, true)
	if err != nil {
		return 0, 0, err
	}

	current, maximum, ok := parseVCPResponse(output)
	if !ok {
		return 0, 0, errors.New(errors.ErrParse,
			fmt.Sprintf("unable to parse getvcp response for feature %s", formatCode(code)), "")
	}
	return current, maximum, nil
}

// SetVCP writes a feature value on the given display. Output is
// discarded; values the monitor rejects surface as the backend's own
// exit failure, the client never validates against a known maximum.
func (c *Client) SetVCP(ctx context.Context, displayID string, code byte, value int) error {
	args := []string{"--display", displayID, "setvcp", formatCode(code), strconv.Itoa(value)}
	_, err := c.inv.Invoke(ctx, args, false)
	return err
}

// GetMultipleVCP reads several feature codes in a single backend
// invocation. Features the display does not support come back as
// unsuccessful entries with an explanatory message; only an invocation
// failure, or output in which no feature block could be located at
// all, fails the call. An empty code list short-circuits to an empty
// result without invoking the backend.
func (c *Client) GetMultipleVCP(ctx context.Context, displayID string, codes []byte) ([]FeatureValue, error) {
	if len(codes) == 0 {
		return []FeatureValue{}, nil
	}

	args := []string{"--display", displayID, "getvcp"}
	for _, code := range codes {
		args = append(args, formatCode(code))
	}

	output, err := c.inv.Invoke(ctx, args, true)
	if err != nil {
		return nil, err
	}

	results, markersFound := parseMultiVCPOutput(output, codes)
	if !markersFound {
		return nil, errors.New(errors.ErrParse,
			"unable to locate any feature values in getvcp response", "")
	}
	return results, nil
}

// formatCode renders a feature code as the 2-hex-digit token ddcutil
// expects on its command line.
func formatCode(code byte) string {
	return fmt.Sprintf("%02x", code)
}
