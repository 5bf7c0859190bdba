package app

import (
	"fmt"
	"strings"

	"github.com/InsYst3m/notification-telegram-bot/internal/domain/asset"
	"github.com/shopspring/decimal"
)

// MessageProvider renders asset data into the text messages the bot sends.
// It is pure formatting, no I/O.
type MessageProvider struct{}

func NewMessageProvider() *MessageProvider {
	return &MessageProvider{}
}

// AssetMessage renders the detailed card for a single asset, one attribute
// per line.
func (p *MessageProvider) AssetMessage(a *asset.Asset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Asset: %s\n", a.Name)
	fmt.Fprintf(&b, "Price: %s USD\n", formatMoney(a.PriceUsd))
	fmt.Fprintf(&b, "Rank: %d\n", a.Rank)
	fmt.Fprintf(&b, "Capitalization: %s USD\n", formatMoney(a.MarketCapUsd))
	fmt.Fprintf(&b, "Volume 24 hours: %s USD\n", formatMoney(a.VolumeUsd24Hr))
	return b.String()
}

// AssetsPriceMessage renders one "<name>: <price> USD" line per asset,
// preserving the caller's ordering. An empty input yields an empty string.
func (p *MessageProvider) AssetsPriceMessage(assets []*asset.Asset) string {
	var b strings.Builder
	for _, a := range assets {
		fmt.Fprintf(&b, "%s: %s USD\n", a.Name, formatMoney(a.PriceUsd))
	}
	return b.String()
}

// formatMoney renders a decimal with exactly three fractional digits and
// space-separated thousand groups, e.g. 1234567.891 -> "1 234 567.891".
func formatMoney(d decimal.Decimal) string {
	fixed := d.StringFixed(3)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	groups := []string{}
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, " ") + "." + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
