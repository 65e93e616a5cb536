package ingest

// Node is the subset of an OSM node the graph builder consumes.
type Node struct {
	ID  int64
	Lat float64
	Lon float64
}

// Way is the subset of an OSM way the graph builder consumes.
type Way struct {
	ID      int64
	NodeIDs []int64
	Tags    map[string]string
}

// Stream yields OSM nodes and ways in file order. A well-formed PBF
// extract delivers every node before any way that references it, which is
// what lets BuildFromStream resolve coordinates in a single pass.
type Stream interface {
	// Next returns the next element. ok is false once the stream is
	// exhausted. Exactly one of the returned pointers is non-nil when
	// ok is true.
	Next() (node *Node, way *Way, ok bool, err error)
}
