// Package definition holds the declarative route definition format consumed
// by the tree builder, decoders for its YAML and JSON documents, and sources
// for loading documents from local files or S3.
//
// A document is either an ordered list of definitions:
//
//	- name: blog
//	  path: /blog
//	  children:
//	    - name: categories
//	      path: /categories
//
// or a mapping from route name to definition. YAML mappings keep document
// order; JSON objects carry no order, so map-form JSON is registered in
// sorted name order. Use the list form when registration order matters for
// overlapping patterns.
package definition
