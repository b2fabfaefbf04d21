// Package model defines the core data structures used throughout
// seqget.
//
// # Item
//
// Item represents one entry of an expanded sequence with its computed
// output path:
//
//	item := model.NewItem(0, "0004", "http://example.com/a0004.jpg", cfg)
//	fmt.Println(item.Path) // Where the download will be saved
//
// # Results
//
// FetchResult records the per-item outcome of a download; Summary
// aggregates them for a whole run, keeping failures in sequence order.
//
// # Output configuration
//
// OutputConfig controls file placement and naming using placeholders:
//
//	cfg := &model.OutputConfig{
//	    Dir:            "./download",
//	    FileNameFormat: "{token}_{name}",
//	}
//
// Available placeholders: {token}, {name}
package model
