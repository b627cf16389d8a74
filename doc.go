// Package flatcms is the Composition Root for a small flat-file CMS.
//
// Documents are plain files in a single directory (the store root). Anyone may
// list and read them; markdown files are rendered to HTML, everything else is
// served as is. Creating, editing and deleting require a signed-in session.
//
// Layout:
//
//   - pkg/core: documents, errors, the Repository port and the Service rules.
//   - pkg/adapters/fs: the filesystem store (atomic writes, change watching).
//   - pkg/auth: the session gate (credential check, signed cookies, notices).
//   - pkg/render: markdown conversion and page templates.
//   - pkg/web: the HTTP routes.
//
// Usage:
//
//	app, err := flatcms.New(".",
//		flatcms.WithLogger(logger),
//		flatcms.WithSessionKey(key),
//	)
//
//	err = app.Serve(ctx, ":5003")
package flatcms
