// Package uikit ships the jinja-ui-kit stylesheet and tells callers where it
// lives on disk.
//
// # Quick Start
//
//	path, err := uikit.CSSPath()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(path) // .../dist/jinja-ui-kit.min.css
//
// The returned path always ends in dist/jinja-ui-kit.min.css. CSSPath only
// builds the path: it does not check that the file exists. Opening a path
// whose file is missing fails with os.ErrNotExist from the filesystem.
//
// # Resource Root
//
// The directory the path is built on is the package's resource root. It is
// resolved on every call, in order:
//
//  1. The directory given with WithAssetPath, if any
//  2. An install tree next to the running binary: {exe}/../share/jinja_ui_kit
//     or {exe}/jinja_ui_kit
//  3. The stylesheet compiled into the binary, written once into a
//     content-addressed directory under the user cache dir
//
// When none of these yields a root, CSSPath returns ErrResourceNotFound.
//
// # Custom Resolvers
//
// Use NewResolver to pin an installation directory or a cache directory:
//
//	r, err := uikit.NewResolver(
//	    uikit.WithAssetPath("/usr/local/share/jinja_ui_kit"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := r.CSSPath()
//
// Implement ResourceLocator to resolve the root some other way and pass it
// to CSSPathFrom.
//
// # Embedded Content
//
// ReadCSS returns the compiled-in stylesheet bytes without touching the
// filesystem.
package uikit
