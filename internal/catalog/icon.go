package catalog

import "strings"

// Icon identifies the display glyph for a category or component.
// Names are resolved once at catalog load; unknown names become IconDefault.
type Icon int

const (
	IconDefault Icon = iota
	IconSparkles
	IconMonitor
	IconShare
	IconFilm
	IconMap
	IconGamepad
	IconPackage
	IconGlasses
	IconAward
	IconLayers
	IconGrid
	IconSmile
	IconPalette
	IconSmartphone
	IconGlobe
	IconPointer
	IconFigma
	IconStar
	IconTarget
	IconMessage
	IconUsers
	IconBook
	IconVideo
	IconWand
	IconClapperboard
	IconPlay
	IconRadio
	IconMapPin
	IconBuilding
	IconFrame
	IconScan
	IconTrophy
	IconNetwork
	IconBlend
	IconShoppingBag
	IconShirt
	IconStore
	IconEye
	IconZap
	IconBlocks
	IconHexagon
)

type iconInfo struct {
	name  string
	glyph string
}

var iconTable = map[Icon]iconInfo{
	IconDefault:      {"circle", "●"},
	IconSparkles:     {"sparkles", "✦"},
	IconMonitor:      {"monitor", "▭"},
	IconShare:        {"share", "⇄"},
	IconFilm:         {"film", "▤"},
	IconMap:          {"map", "◫"},
	IconGamepad:      {"gamepad", "◈"},
	IconPackage:      {"package", "▣"},
	IconGlasses:      {"glasses", "◎"},
	IconAward:        {"award", "✪"},
	IconLayers:       {"layers", "≋"},
	IconGrid:         {"grid", "▦"},
	IconSmile:        {"smile", "☺"},
	IconPalette:      {"palette", "✎"},
	IconSmartphone:   {"smartphone", "▯"},
	IconGlobe:        {"globe", "◍"},
	IconPointer:      {"pointer", "➤"},
	IconFigma:        {"figma", "◐"},
	IconStar:         {"star", "★"},
	IconTarget:       {"target", "◉"},
	IconMessage:      {"message", "✉"},
	IconUsers:        {"users", "⚇"},
	IconBook:         {"book", "▥"},
	IconVideo:        {"video", "▶"},
	IconWand:         {"wand", "⚚"},
	IconClapperboard: {"clapperboard", "▧"},
	IconPlay:         {"play", "►"},
	IconRadio:        {"radio", "◔"},
	IconMapPin:       {"map-pin", "⚑"},
	IconBuilding:     {"building", "▙"},
	IconFrame:        {"frame", "▢"},
	IconScan:         {"scan", "⌗"},
	IconTrophy:       {"trophy", "♛"},
	IconNetwork:      {"network", "⋈"},
	IconBlend:        {"blend", "◑"},
	IconShoppingBag:  {"shopping-bag", "◻"},
	IconShirt:        {"shirt", "⊤"},
	IconStore:        {"store", "⌂"},
	IconEye:          {"eye", "◉"},
	IconZap:          {"zap", "ϟ"},
	IconBlocks:       {"blocks", "▚"},
	IconHexagon:      {"hexagon", "⬡"},
}

var iconsByName = func() map[string]Icon {
	m := make(map[string]Icon, len(iconTable))
	for icon, info := range iconTable {
		m[info.name] = icon
	}
	return m
}()

// ParseIcon resolves an icon name (case-insensitive) to its Icon.
func ParseIcon(name string) Icon {
	if icon, ok := iconsByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return icon
	}
	return IconDefault
}

// String returns the icon's canonical name.
func (i Icon) String() string {
	if info, ok := iconTable[i]; ok {
		return info.name
	}
	return iconTable[IconDefault].name
}

// Glyph returns the single-cell terminal glyph for the icon.
func (i Icon) Glyph() string {
	if info, ok := iconTable[i]; ok {
		return info.glyph
	}
	return iconTable[IconDefault].glyph
}

// MarshalText implements encoding.TextMarshaler so icons round-trip through TOML.
func (i Icon) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Icon) UnmarshalText(text []byte) error {
	*i = ParseIcon(string(text))
	return nil
}
