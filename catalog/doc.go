// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog holds the question bank and the neighborhood reference profiles.

# Default Catalog

Default returns the 30 Likert statements of the questionnaire (ids 1-30,
displayed in id order) and the 8 NYC neighborhood profiles used by the
classifier:

	cat := catalog.Default()
	q, ok := cat.Lookup(7)

# Custom Catalogs

A catalog can be loaded from YAML at startup (CATALOG_FILE / -catalog):

	questions:
	  - id: 1
	    text: "Read receipts should be illegal"
	    category: social
	    scale_min_label: Strongly Disagree
	    scale_max_label: Strongly Agree
	    order: 1
	neighborhoods: []   # optional, defaults are used when empty

New rejects duplicate or non-positive ids, empty text, and unknown categories.
A Catalog never changes after construction; accessors return copies.
*/
package catalog
