// Package assets provides the static OOXML parts every presentation shares.
//
// # Loader Architecture
//
//	PartLoader (interface)
//	    │
//	    └── EmbeddedLoader    - loads from go:embed filesystem (ooxml/*.xml)
//
// A presentation needs one theme, one slide master and one blank slide layout
// regardless of its content. These parts, plus the presentation, view and
// table-style property parts, are embedded at compile time and grouped into a
// PartSet. The theme is a text/template filled with the deck palette.
//
// # Directory Structure
//
//	ooxml/
//	├── theme.xml          # theme1.xml template ({{.Primary}}, ...)
//	├── slideMaster.xml    # slideMaster1.xml
//	├── slideLayout.xml    # slideLayout1.xml (blank)
//	├── presProps.xml
//	├── viewProps.xml
//	└── tableStyles.xml
//
// # Security
//
// Part names are validated to prevent path traversal.
package assets
