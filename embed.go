package folio

import "embed"

// EmbeddedAssets contains static assets shipped with the binary:
// scrollspy.js and the default favicon.svg
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
