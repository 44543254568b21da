package weddingnanny

import "embed"

// EmbeddedAssets holds the default stylesheet served at /public/styles.css.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
