package app

import (
	"regexp"
	"strings"
)

// CommandKind enumerates every command the bot understands. Parsing is
// total: any input maps to exactly one kind, defaulting to KindUnrecognized.
type CommandKind string

const (
	KindUnrecognized    CommandKind = "UNRECOGNIZED"
	KindListAssets      CommandKind = "LIST_ASSETS"
	KindShowAsset       CommandKind = "SHOW_ASSET"
	KindFavouriteAssets CommandKind = "FAVOURITE_ASSETS"
)

const (
	listAssetsKeyword      = "assets"
	favouriteAssetsCommand = "/favouriteassets"
)

var showAssetPattern = regexp.MustCompile(`(?i)^(/asset )(.+)`)

// Command is one parsed chat instruction. AssetID is populated only for
// KindShowAsset. Commands are stateless and discarded after execution.
type Command struct {
	Kind    CommandKind
	AssetID string
}

// Resolve maps free-form chat text to a Command. Matching is
// case-insensitive and checked in priority order; anything that matches no
// rule, including blank input, resolves to KindUnrecognized.
func Resolve(text string) Command {
	if strings.TrimSpace(text) == "" {
		return Command{Kind: KindUnrecognized}
	}

	switch {
	case strings.EqualFold(text, listAssetsKeyword):
		return Command{Kind: KindListAssets}
	case hasFoldPrefix(text, "/asset "):
		if m := showAssetPattern.FindStringSubmatch(text); m != nil {
			return Command{Kind: KindShowAsset, AssetID: m[2]}
		}
		return Command{Kind: KindUnrecognized}
	case hasFoldPrefix(text, favouriteAssetsCommand):
		return Command{Kind: KindFavouriteAssets}
	}
	return Command{Kind: KindUnrecognized}
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
