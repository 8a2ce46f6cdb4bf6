// Package assets locates the resource root of a package and the bundled
// stylesheet beneath it.
//
// # Locator Architecture
//
// The package implements a layered lookup:
//
//	ResourceLocator (interface)
//	    │
//	    ├── DirLocator         - a configured installation directory
//	    ├── ExecutableLocator  - an install tree next to the running binary
//	    ├── EmbeddedLocator    - go:embed files materialized into a cache directory
//	    └── Resolver           - custom locator first, then the default chain
//
// Resolver is the primary locator. It tries the custom DirLocator first, then
// ExecutableLocator, then EmbeddedLocator. It moves to the next locator only
// when the previous one reports ErrResourceNotFound; validation errors stop
// the chain.
//
// # Directory Structure
//
// Every resource root has the same layout:
//
//	{root}/
//	└── dist/
//	    └── jinja-ui-kit.min.css
//
// StylesheetPath joins the fixed segments onto a root. It never checks that
// the stylesheet exists: a missing file surfaces when the caller opens the path.
package assets
