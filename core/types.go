// Package core defines the central dynamic Graph, Vertex, Edge and Interaction
// types, and provides thread-safe primitives for building and querying
// edge-activity timelines.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges, adjacency and timelines), so graphs can be read from
// several goroutines while one goroutine feeds interactions.
//
// This file declares Vertex, Edge, Interaction, Span, Event, Graph, GraphOption,
// InteractionOption, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
//	ErrBadInterval    - interaction stop does not follow its start, or the
//	                    start is math.MaxInt64.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadInterval indicates an interaction whose stop is not after its start.
	ErrBadInterval = errors.New("core: interaction stop must be greater than start")
)

// Op is the kind of an interaction event.
type Op byte

const (
	// OpAdd marks the moment an edge becomes active.
	OpAdd Op = '+'

	// OpRemove marks the moment an edge stops being active.
	OpRemove Op = '-'
)

// String returns the single-character wire form of the operation.
func (o Op) String() string { return string(rune(o)) }

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared on shallow clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Interaction is one activity entry of an edge: the edge was present at Time.
// EdgeID is the optional identifier attached by the snapshot format.
type Interaction struct {
	Time   int64
	EdgeID string
}

// Span is a maximal run of consecutive timestamps [Start, Stop) sharing EdgeID.
type Span struct {
	Start  int64
	Stop   int64
	EdgeID string
}

// Len returns the number of timesteps covered by the span.
func (s Span) Len() int64 { return s.Stop - s.Start }

// Event is one element of the interaction stream: the edge From–To
// appeared (OpAdd) or disappeared (OpRemove) at Time.
type Event struct {
	From string
	To   string
	Op   Op
	Time int64
}

// Edge represents a connection between two vertices together with its
// activity timeline.
//
// Each Edge has a unique ID, endpoints From→To as first registered, and a
// Directed flag inherited from the Graph.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool

	// timeline holds the activity entries sorted by Time, unique per Time.
	timeline []Interaction
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all edges
// (true = ordered pairs, false = unordered pairs).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
// Interaction lists routinely contain them, so NewGraph enables loops unless
// WithLoops(false) is given.
func WithLoops(allow bool) GraphOption {
	return func(g *Graph) { g.allowLoops = allow }
}

// InteractionOption configures a single AddInteraction call.
type InteractionOption func(*interactionConfig)

type interactionConfig struct {
	edgeID  string
	stop    int64
	hasStop bool
}

// WithEdgeID attaches an edge identifier to the registered entries.
func WithEdgeID(id string) InteractionOption {
	return func(c *interactionConfig) { c.edgeID = id }
}

// WithUntil registers every timestep in [t, stop) instead of the single t.
func WithUntil(stop int64) InteractionOption {
	return func(c *interactionConfig) { c.stop, c.hasStop = stop, true }
}

// Graph is the core in-memory dynamic graph data structure.
//
// Every edge carries a sorted activity timeline. muVert protects the vertices
// map; muEdgeAdj protects the edges map, adjacency and timelines.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, adjacency and timelines

	// Configuration flags
	directed   bool // ordered pairs
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[from][to] = Edge.ID; undirected edges are mirrored.
	adjacencyList map[string]map[string]string
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected and permits self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		allowLoops:    true,
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]string),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
