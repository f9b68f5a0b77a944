// Package system composes the hierarchy, pairwise scorer and state registry
// into one facade offering initialize, synchronize, evolve, validate and status.
//
// Every exported method takes the facade's lock for its whole duration, so a
// System may be shared between goroutines; the packages it wraps may not.
package system

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aristath/tsnn/internal/domain"
	"github.com/aristath/tsnn/internal/modules/fidelity"
	"github.com/aristath/tsnn/internal/modules/hierarchy"
	"github.com/aristath/tsnn/internal/modules/registry"
	"github.com/aristath/tsnn/pkg/formulas"
)

// SyncValidThreshold is the mean layer sync ValidateIntegrity requires.
const SyncValidThreshold = 0.5

// SystemState holds the scalars the facade updates as it runs.
type SystemState struct {
	Initialized               bool    `json:"initialized" msgpack:"initialized"`
	SynchronizationFidelity   float64 `json:"synchronization_fidelity" msgpack:"synchronization_fidelity"`
	ResourceOptimizationScore float64 `json:"resource_optimization_score" msgpack:"resource_optimization_score"`
	EthicalCompliance         float64 `json:"ethical_compliance" msgpack:"ethical_compliance"`
	ConsciousnessIntegration  float64 `json:"consciousness_integration" msgpack:"consciousness_integration"`
}

// System is the facade over one hierarchy and one registry.
type System struct {
	mu       sync.Mutex
	cfg      Config
	tree     *hierarchy.Hierarchy
	registry *registry.Registry
	state    SystemState
	log      zerolog.Logger
}

// New validates cfg, builds the hierarchy and seeds a random reference field.
func New(cfg Config, log zerolog.Logger) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	topology := rand.NewPCG(seed, 1)
	noise := rand.NewPCG(seed, 2)

	s := &System{
		cfg:      cfg,
		tree:     hierarchy.Build(cfg.CoreNodes, cfg.AggregationNodes, cfg.EdgeNodes, cfg.QuantumDimension, topology),
		registry: registry.New(nil, noise, log),
		log:      log.With().Str("component", "system").Logger(),
	}

	field := make([]float64, cfg.QuantumDimension*cfg.QuantumDimension)
	uniform := distuv.Uniform{Min: 0, Max: 1, Src: topology}
	for i := range field {
		field[i] = uniform.Rand()
	}
	if err := s.registry.SetReference(field); err != nil {
		return nil, fmt.Errorf("failed to seed reference field: %w", err)
	}

	s.log.Debug().
		Int("nodes", s.tree.TotalNodes()).
		Int("edges", s.tree.TotalEdges()).
		Int("dimension", cfg.QuantumDimension).
		Msg("System constructed")
	return s, nil
}

// Initialize registers every node state, then records the initial layer sync
// and mean resource utility. Node states are registered all or nothing: a
// registration error aborts initialization and leaves the registry unchanged.
func (s *System) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Initialized = false
	nodes := s.tree.Nodes()
	entries := make([]registry.Entry, 0, len(nodes))
	for _, node := range nodes {
		if node.State == nil {
			continue
		}
		entries = append(entries, registry.Entry{ID: node.ID, Vector: flatten(node.State)})
	}
	if err := s.registry.RegisterAll(entries); err != nil {
		s.log.Error().Err(err).Msg("System initialization failed")
		return fmt.Errorf("failed to register node states: %w", err)
	}

	s.state.SynchronizationFidelity = fidelity.MeanLayerSync(s.tree.Edges(), s.stateOf)
	s.state.ResourceOptimizationScore = s.meanUtility()
	s.state.Initialized = true

	s.log.Info().
		Int("states", s.registry.Len()).
		Float64("sync", s.state.SynchronizationFidelity).
		Float64("utility", s.state.ResourceOptimizationScore).
		Msg("System initialized")
	return nil
}

// Synchronize recomputes mean layer sync, constraint pass rate and mean
// integration, and returns their unweighted average. An empty component counts as 0.
func (s *System) Synchronize() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	treeSync := fidelity.MeanLayerSync(s.tree.Edges(), s.stateOf)
	compliance := s.registry.PassRate()
	integration := s.registry.HealthSummary().Integration

	s.state.SynchronizationFidelity = treeSync
	s.state.EthicalCompliance = compliance
	s.state.ConsciousnessIntegration = integration

	overall := formulas.Clamp((treeSync+compliance+integration)/3, 0, 1)
	s.log.Info().
		Float64("tree_sync", treeSync).
		Float64("compliance", compliance).
		Float64("integration", integration).
		Float64("overall", overall).
		Msg("System synchronized")
	return overall
}

// Evolve replaces the vector of one record.
func (s *System) Evolve(id string, vector []float64) (registry.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.registry.Evolve(id, vector)
}

// AddState registers vector under id, or under a generated id when id is empty.
func (s *System) AddState(id string, vector []float64) (registry.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		return s.registry.Add(vector)
	}
	return s.registry.Register(id, vector)
}

// RemoveState deletes a record and reports whether it existed.
func (s *System) RemoveState(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.registry.Remove(id)
}

// Record returns a copy of a registered record.
func (s *System) Record(id string) (registry.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.registry.Get(id)
}

// NodeConnectivity lists the nodes directly connected to id.
func (s *System) NodeConnectivity(id string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tree.Neighbors(id)
}

// UpdateReferenceField replaces the reference field with a normalized copy of
// field. The field must hold exactly one entry per node state element.
func (s *System) UpdateReferenceField(field mat.Matrix) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if field == nil {
		return &domain.DegenerateInputError{Context: "reference field"}
	}
	dim := s.tree.Dimension()
	if r, c := field.Dims(); r*c != dim*dim {
		return &domain.DimensionMismatchError{Want: dim * dim, Got: r * c}
	}
	return s.registry.SetReference(flatten(field))
}

// stateOf resolves the current state of a node id: the registered record
// reshaped to the node's shape when present, otherwise the node's own state.
// Callers hold s.mu.
func (s *System) stateOf(id string) mat.Matrix {
	node, isNode := s.tree.Node(id)
	rec, registered := s.registry.Get(id)
	switch {
	case registered && isNode:
		r, c := node.State.Dims()
		if r*c == len(rec.Vector) {
			return mat.NewDense(r, c, rec.Vector)
		}
		return mat.NewVecDense(len(rec.Vector), rec.Vector)
	case registered:
		return mat.NewVecDense(len(rec.Vector), rec.Vector)
	case isNode && node.State != nil:
		return node.State
	}
	return nil
}

// meanUtility averages coherence × strictest threshold over all nodes.
// A node without a record contributes 0. Callers hold s.mu.
func (s *System) meanUtility() float64 {
	nodes := s.tree.Nodes()
	utilities := make([]float64, 0, len(nodes))
	for _, node := range nodes {
		rec, ok := s.registry.Get(node.ID)
		if !ok {
			utilities = append(utilities, 0)
			continue
		}
		utilities = append(utilities, rec.Coherence*node.StrictestThreshold())
	}
	return formulas.Mean(utilities)
}

// flatten copies m in row-major order.
func flatten(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		out = append(out, mat.Row(nil, i, m)...)
	}
	return out
}
