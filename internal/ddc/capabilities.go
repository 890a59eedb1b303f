package ddc

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"monitorctl/internal/errors"
)

// InputSources reads the selectable values of the Input Source feature
// (0x60) from the display's capabilities string.
func (c *Client) InputSources(ctx context.Context, displayID string) ([]InputSource, error) {
	args := []string{"--display", displayID, "capabilities"}
	output, err := c.inv.Invoke(ctx, args, true)
	if err != nil {
		return nil, err
	}

	sources := parseInputSources(output)
	if len(sources) == 0 {
		return nil, errors.New(errors.ErrParse,
			"no input sources reported in capabilities response", "")
	}
	return sources, nil
}

// parseInputSources scans a capabilities listing for the feature 0x60
// section and decodes its Values line. Output looks like:
//
//	Feature: 60 (Input Source)
//	   Values: 0f 11 12
func parseInputSources(output string) []InputSource {
	var sources []InputSource

	inInputSection := false
	for _, raw := range strings.Split(output, "\n") {
		line := strings.TrimSpace(raw)

		if strings.HasPrefix(line, "Feature: 60") {
			inInputSection = true
			continue
		}
		if !inInputSection {
			continue
		}

		if strings.HasPrefix(line, "Values:") {
			for _, token := range strings.Fields(strings.TrimPrefix(line, "Values:")) {
				value, err := strconv.ParseUint(token, 16, 8)
				if err != nil {
					continue
				}
				sources = append(sources, InputSource{
					Value: byte(value),
					Name:  inputSourceName(byte(value)),
				})
			}
			break
		}
		if strings.HasPrefix(line, "Feature:") {
			break
		}
	}

	return sources
}

// inputSourceName maps standard VCP input source values to connector
// names.
func inputSourceName(value byte) string {
	switch value {
	case 0x01:
		return "VGA"
	case 0x03:
		return "DVI-1"
	case 0x04:
		return "DVI-2"
	case 0x0F:
		return "DisplayPort-1"
	case 0x10:
		return "DisplayPort-2"
	case 0x11:
		return "HDMI-1"
	case 0x12:
		return "HDMI-2"
	case 0x13:
		return "HDMI-3"
	case 0x1B:
		return "USB-C"
	default:
		return fmt.Sprintf("Input-0x%02X", value)
	}
}
