package ddc

import (
	"fmt"
	"strconv"
	"strings"
)

// VCP feature codes used by the standard control set.
const (
	FeatureBrightness  byte = 0x10
	FeatureContrast    byte = 0x12
	FeatureRedGain     byte = 0x16
	FeatureGreenGain   byte = 0x18
	FeatureBlueGain    byte = 0x1A
	FeatureInputSource byte = 0x60
	FeatureVolume      byte = 0x62
	FeatureGamma       byte = 0x72
	FeatureSharpness   byte = 0x87
	FeatureSaturation  byte = 0x8A
	FeatureHue         byte = 0x8B
)

// Feature group identifiers.
const (
	GroupPicture = "picture"
	GroupColor   = "color"
	GroupAudio   = "audio"
)

// Feature describes one catalogued monitor control.
type Feature struct {
	Code  byte
	Name  string
	Group string
}

// Catalog is the standard continuous control set, in display order.
var Catalog = []Feature{
	{FeatureBrightness, "brightness", GroupPicture},
	{FeatureContrast, "contrast", GroupPicture},
	{FeatureSharpness, "sharpness", GroupPicture},
	{FeatureGamma, "gamma", GroupPicture},
	{FeatureRedGain, "red", GroupColor},
	{FeatureGreenGain, "green", GroupColor},
	{FeatureBlueGain, "blue", GroupColor},
	{FeatureSaturation, "saturation", GroupColor},
	{FeatureHue, "hue", GroupColor},
	{FeatureVolume, "volume", GroupAudio},
}

// GroupTitles maps group identifiers to section headings, in display
// order.
var GroupTitles = []struct {
	ID    string
	Title string
}{
	{GroupPicture, "Picture"},
	{GroupColor, "Color balance"},
	{GroupAudio, "Audio"},
}

// CatalogCodes returns the feature codes of the catalog in display order.
func CatalogCodes() []byte {
	codes := make([]byte, len(Catalog))
	for i, f := range Catalog {
		codes[i] = f.Code
	}
	return codes
}

// LookupFeature resolves a catalog name (case-insensitive) or a hex
// code token like "10" or "0x10" to a feature code.
func LookupFeature(token string) (byte, error) {
	name := strings.ToLower(strings.TrimSpace(token))
	for _, f := range Catalog {
		if f.Name == name {
			return f.Code, nil
		}
	}

	code, err := strconv.ParseUint(strings.TrimPrefix(name, "0x"), 16, 8)
	if err != nil {
		return 0, fmt.Errorf("unknown feature %q: use a catalog name or a 2-hex-digit VCP code", token)
	}
	return byte(code), nil
}

// FeatureName returns the catalog name for a code, or its hex token
// when the code is not catalogued.
func FeatureName(code byte) string {
	for _, f := range Catalog {
		if f.Code == code {
			return f.Name
		}
	}
	return fmt.Sprintf("0x%02x", code)
}
