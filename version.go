package flatcms

import _ "embed"

// Version exposes the version of the module, read from the VERSION file.
//
//go:embed VERSION
var Version string
