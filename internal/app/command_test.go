package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_BlankInputIsUnrecognized(t *testing.T) {
	for _, text := range []string{"", "   ", "\t \n"} {
		require.Equal(t, Command{Kind: KindUnrecognized}, Resolve(text), "input %q", text)
	}
}

func TestResolve_ListAssetsKeywordIsCaseInsensitive(t *testing.T) {
	for _, text := range []string{"assets", "ASSETS", "Assets"} {
		require.Equal(t, Command{Kind: KindListAssets}, Resolve(text), "input %q", text)
	}
}

func TestResolve_ListAssetsKeywordMustMatchExactly(t *testing.T) {
	for _, text := range []string{" assets", "assets ", "assets list"} {
		require.Equal(t, KindUnrecognized, Resolve(text).Kind, "input %q", text)
	}
}

func TestResolve_ShowAssetExtractsIdentifier(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"/asset bitcoin", "bitcoin"},
		{"/ASSET bitcoin", "bitcoin"},
		{"/asset near-protocol", "near-protocol"},
		{"/asset Bitcoin", "Bitcoin"},
	}
	for _, tt := range tests {
		require.Equal(t, Command{Kind: KindShowAsset, AssetID: tt.want}, Resolve(tt.text), "input %q", tt.text)
	}
}

func TestResolve_ShowAssetWithEmptyRemainderIsUnrecognized(t *testing.T) {
	for _, text := range []string{"/asset", "/asset "} {
		require.Equal(t, Command{Kind: KindUnrecognized}, Resolve(text), "input %q", text)
	}
}

func TestResolve_FavouriteAssetsMatchesPrefix(t *testing.T) {
	for _, text := range []string{"/favouriteassets", "/FavouriteAssets", "/favouriteassets now"} {
		require.Equal(t, Command{Kind: KindFavouriteAssets}, Resolve(text), "input %q", text)
	}
}

func TestResolve_UnknownTextIsUnrecognized(t *testing.T) {
	for _, text := range []string{"hello", "asset bitcoin", "/assets", "/favourite"} {
		require.Equal(t, Command{Kind: KindUnrecognized}, Resolve(text), "input %q", text)
	}
}
