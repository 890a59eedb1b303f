package ddc

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	unknownDisplayName = "Unknown display"

	// controlUnavailableMessage is reported for features the backend
	// omitted or answered with something other than a value pair.
	controlUnavailableMessage = "Control unavailable for this display."
)

// vcpValueRE matches the current/max pair of a getvcp response. The
// tokens may be separated by arbitrary text, including newlines, and
// casing varies between ddcutil versions.
var vcpValueRE = regexp.MustCompile(`(?is)current value\s*=\s*(\d+).+max value\s*=\s*(\d+)`)

// vcpMarkerRE matches a line introducing one feature block of a
// multi-code getvcp response, capturing the 2-hex-digit feature code.
var vcpMarkerRE = regexp.MustCompile(`(?im)^\s*VCP code\s+(?:0x)?([0-9A-Fa-f]{2})`)

// digitRunRE finds the first run of ASCII digits in a display marker line.
var digitRunRE = regexp.MustCompile(`\d+`)

// parseDetectOutput scans a "ddcutil detect --brief" listing into
// monitor records. A line starting with "Display" opens a new record;
// Model / I2C bus / Serial number lines populate the open record with
// the text after the first colon. Repeated field lines overwrite.
func parseDetectOutput(output string) []Monitor {
	var monitors []Monitor
	var current *Monitor

	flush := func() {
		if current == nil {
			return
		}
		if current.Name == "" {
			current.Name = unknownDisplayName
		}
		monitors = append(monitors, *current)
		current = nil
	}

	for _, raw := range strings.Split(output, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "Display"):
			flush()
			current = &Monitor{DisplayID: parseDisplayID(line)}
		case current == nil:
			// Content before the first marker belongs to no record.
		case strings.HasPrefix(line, "Model"):
			current.Name = extractFieldValue(line)
		case strings.HasPrefix(line, "I2C bus"):
			current.Bus = extractFieldValue(line)
		case strings.HasPrefix(line, "Serial number"):
			current.Serial = extractFieldValue(line)
		}
	}
	flush()

	return monitors
}

// parseDisplayID extracts the first digit run from a display marker
// line, defaulting to "1" when the line carries no numeral.
func parseDisplayID(line string) string {
	if id := digitRunRE.FindString(line); id != "" {
		return id
	}
	return "1"
}

// extractFieldValue returns the text after the first colon, trimmed of
// leading whitespace. Lines without a colon are returned whole.
func extractFieldValue(line string) string {
	_, value, found := strings.Cut(line, ":")
	if !found {
		return strings.TrimSpace(line)
	}
	return strings.TrimLeft(value, " \t")
}

// parseVCPResponse extracts the current/maximum pair from a
// single-feature getvcp response.
func parseVCPResponse(output string) (current, maximum int, ok bool) {
	matches := vcpValueRE.FindStringSubmatch(output)
	if matches == nil {
		return 0, 0, false
	}
	current, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, false
	}
	maximum, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, false
	}
	return current, maximum, true
}

// parseMultiVCPOutput splits a multi-code getvcp response into one
// block per feature marker and fills a result for every requested
// code, in request order. Features whose block lacks a value pair (or
// that have no block at all, which is how the backend reports
// unsupported features) come back unsuccessful with an explanatory
// message instead of failing the batch. markersFound reports whether
// any feature block was located at all.
func parseMultiVCPOutput(output string, codes []byte) (results []FeatureValue, markersFound bool) {
	results = make([]FeatureValue, len(codes))
	for i, code := range codes {
		results[i] = FeatureValue{
			Code:         code,
			Maximum:      100,
			ErrorMessage: controlUnavailableMessage,
		}
	}

	markers := vcpMarkerRE.FindAllStringSubmatchIndex(output, -1)
	if len(markers) == 0 {
		return results, false
	}

	for m, marker := range markers {
		code, err := strconv.ParseUint(output[marker[2]:marker[3]], 16, 8)
		if err != nil {
			continue
		}

		end := len(output)
		if m+1 < len(markers) {
			end = markers[m+1][0]
		}
		block := output[marker[0]:end]

		for i := range results {
			if results[i].Code != byte(code) {
				continue
			}
			if current, maximum, ok := parseVCPResponse(block); ok {
				results[i].Success = true
				results[i].Current = current
				results[i].Maximum = maximum
				results[i].ErrorMessage = ""
			} else {
				results[i].ErrorMessage = blockErrorMessage(block)
			}
		}
	}

	return results, true
}

// blockErrorMessage derives a human-readable explanation from a failed
// feature block: the text after the block's first colon, or a generic
// message when the block has no usable remainder.
func blockErrorMessage(block string) string {
	_, remainder, found := strings.Cut(block, ":")
	if !found {
		return controlUnavailableMessage
	}
	remainder = strings.TrimSpace(remainder)
	if remainder == "" {
		return controlUnavailableMessage
	}
	return remainder
}
