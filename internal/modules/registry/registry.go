// Package registry stores normalized state records and derives their coherence,
// entanglement and alignment scores against a shared reference field.
package registry

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aristath/tsnn/internal/domain"
	"github.com/aristath/tsnn/pkg/formulas"
)

// perturbationSigma is the standard deviation of the noise added before the entropy estimate.
const perturbationSigma = 0.01

// Record is a registered state with its derived scalars.
type Record struct {
	ID           string    `json:"id"`
	Vector       []float64 `json:"vector"`
	Coherence    float64   `json:"coherence"`
	Entanglement float64   `json:"entanglement_entropy"`
	Alignment    float64   `json:"ethical_fidelity"`
}

func (r *Record) clone() Record {
	out := *r
	out.Vector = slices.Clone(r.Vector)
	return out
}

// HealthSummary aggregates the registry. Every field is 0 for an empty registry.
type HealthSummary struct {
	Coherence   float64 `json:"coherence" msgpack:"coherence"`
	Alignment   float64 `json:"ethical_fidelity" msgpack:"ethical_fidelity"`
	Integration float64 `json:"consciousness_integration" msgpack:"consciousness_integration"`
	PassRate    float64 `json:"constraint_pass_rate" msgpack:"constraint_pass_rate"`
}

// Registry owns every record. It is not safe for concurrent use.
type Registry struct {
	records     map[string]*Record
	order       []string
	constraints []Constraint
	reference   []float64
	noise       distuv.Normal
	log         zerolog.Logger
}

// New creates a registry. A nil constraints slice selects DefaultConstraints.
// noise drives the entanglement perturbation; nil uses the global source, which
// makes entanglement scores differ between calls.
func New(constraints []Constraint, noise rand.Source, log zerolog.Logger) *Registry {
	if constraints == nil {
		constraints = DefaultConstraints()
	}
	return &Registry{
		records:     make(map[string]*Record),
		constraints: slices.Clone(constraints),
		noise:       distuv.Normal{Mu: 0, Sigma: perturbationSigma, Src: noise},
		log:         log.With().Str("component", "registry").Logger(),
	}
}

// Entry is one vector to register under ID.
type Entry struct {
	ID     string
	Vector []float64
}

// SetReference replaces the reference field with a normalized copy of field and
// refreshes the alignment of every record. A zero or non-finite field is
// rejected, as is a field whose length differs from a registered vector.
func (r *Registry) SetReference(field []float64) error {
	normalized, err := normalize("reference field", field)
	if err != nil {
		return err
	}
	for _, id := range r.order {
		if got := len(r.records[id].Vector); got != len(normalized) {
			return &domain.DimensionMismatchError{Want: got, Got: len(normalized)}
		}
	}

	r.reference = normalized
	for _, id := range r.order {
		rec := r.records[id]
		rec.Alignment = formulas.Cosine(rec.Vector, r.reference)
	}
	r.log.Debug().Int("length", len(normalized)).Msg("Reference field replaced")
	return nil
}

// HasReference reports whether a reference field is set.
func (r *Registry) HasReference() bool {
	return r.reference != nil
}

// Register normalizes vector, derives its scores and stores it under id,
// replacing any existing record.
func (r *Registry) Register(id string, vector []float64) (Record, error) {
	rec, err := r.build(id, vector)
	if err != nil {
		return Record{}, err
	}
	r.store(rec)
	return rec.clone(), nil
}

// RegisterAll registers every entry, or none of them: all records are built
// first and stored only when each one succeeded.
func (r *Registry) RegisterAll(entries []Entry) error {
	built := make([]*Record, 0, len(entries))
	for _, e := range entries {
		rec, err := r.build(e.ID, e.Vector)
		if err != nil {
			return err
		}
		built = append(built, rec)
	}
	for _, rec := range built {
		r.store(rec)
	}
	return nil
}

func (r *Registry) store(rec *Record) {
	if _, exists := r.records[rec.ID]; !exists {
		r.order = append(r.order, rec.ID)
	}
	r.records[rec.ID] = rec

	r.log.Debug().
		Str("id", rec.ID).
		Float64("coherence", rec.Coherence).
		Float64("entanglement", rec.Entanglement).
		Float64("alignment", rec.Alignment).
		Msg("State registered")
}

// Add registers vector under a freshly generated id.
func (r *Registry) Add(vector []float64) (Record, error) {
	return r.Register(uuid.New().String(), vector)
}

// Evolve replaces the vector of an existing record and recomputes its scores.
func (r *Registry) Evolve(id string, vector []float64) (Record, error) {
	existing, ok := r.records[id]
	if !ok {
		return Record{}, &domain.RecordNotFoundError{ID: id}
	}
	rec, err := r.build(id, vector)
	if err != nil {
		return Record{}, err
	}
	*existing = *rec

	r.log.Debug().Str("id", id).Float64("alignment", rec.Alignment).Msg("State evolved")
	return existing.clone(), nil
}

// Remove deletes id and reports whether it was present.
func (r *Registry) Remove(id string) bool {
	if _, ok := r.records[id]; !ok {
		return false
	}
	delete(r.records, id)
	r.order = slices.DeleteFunc(r.order, func(s string) bool { return s == id })
	return true
}

// Get returns a copy of the record stored under id.
func (r *Registry) Get(id string) (Record, bool) {
	rec, ok := r.records[id]
	if !ok {
		return Record{}, false
	}
	return rec.clone(), true
}

// IDs returns record ids in registration order.
func (r *Registry) IDs() []string {
	return slices.Clone(r.order)
}

// Len returns the number of records.
func (r *Registry) Len() int {
	return len(r.order)
}

// Constraints returns a copy of the registry's constraint list.
func (r *Registry) Constraints() []Constraint {
	return slices.Clone(r.constraints)
}

// SatisfiesConstraints checks id against constraints and stops at the first violation.
// An unknown id never satisfies.
func (r *Registry) SatisfiesConstraints(id string, constraints []Constraint) bool {
	rec, ok := r.records[id]
	if !ok {
		return false
	}
	for _, c := range constraints {
		if !c.check(rec) {
			return false
		}
	}
	return true
}

// Passes checks id against the registry's own constraints.
func (r *Registry) Passes(id string) bool {
	return r.SatisfiesConstraints(id, r.constraints)
}

// PassRate is the fraction of records passing the registry's constraints, 0 when empty.
func (r *Registry) PassRate() float64 {
	if len(r.order) == 0 {
		return 0
	}
	passed := 0
	for _, id := range r.order {
		if r.Passes(id) {
			passed++
		}
	}
	return float64(passed) / float64(len(r.order))
}

// Integration is the live overlap |<v, reference>| of id, clipped to [0, 1].
// It is 0 without a reference field or for an unknown id.
func (r *Registry) Integration(id string) float64 {
	rec, ok := r.records[id]
	if !ok || r.reference == nil || len(rec.Vector) != len(r.reference) {
		return 0
	}
	return formulas.Clamp(math.Abs(floats.Dot(rec.Vector, r.reference)), 0, 1)
}

// HealthSummary averages coherence, alignment, integration and constraint pass rate.
func (r *Registry) HealthSummary() HealthSummary {
	n := len(r.order)
	if n == 0 {
		return HealthSummary{}
	}
	coherences := make([]float64, 0, n)
	alignments := make([]float64, 0, n)
	integrations := make([]float64, 0, n)
	for _, id := range r.order {
		rec := r.records[id]
		coherences = append(coherences, rec.Coherence)
		alignments = append(alignments, rec.Alignment)
		integrations = append(integrations, r.Integration(id))
	}
	return HealthSummary{
		Coherence:   formulas.Mean(coherences),
		Alignment:   formulas.Mean(alignments),
		Integration: formulas.Mean(integrations),
		PassRate:    r.PassRate(),
	}
}

// normalize rejects vectors with NaN/Inf entries or zero norm.
func normalize(context string, vector []float64) ([]float64, error) {
	for _, x := range vector {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, &domain.DegenerateInputError{Context: context, Reason: "non-finite entries"}
		}
	}
	v, norm := formulas.Normalize(vector)
	if norm == 0 {
		return nil, &domain.DegenerateInputError{Context: context}
	}
	if math.IsInf(norm, 0) || math.IsNaN(norm) {
		return nil, &domain.DegenerateInputError{Context: context, Reason: "non-finite norm"}
	}
	return v, nil
}

func (r *Registry) build(id string, vector []float64) (*Record, error) {
	v, err := normalize("state "+id, vector)
	if err != nil {
		return nil, err
	}

	alignment := 1.0
	if r.reference != nil {
		if len(v) != len(r.reference) {
			return nil, &domain.DimensionMismatchError{Want: len(r.reference), Got: len(v)}
		}
		alignment = formulas.Cosine(v, r.reference)
	}

	return &Record{
		ID:           id,
		Vector:       v,
		Coherence:    coherence(v),
		Entanglement: r.entanglement(v),
		Alignment:    alignment,
	}, nil
}

// entanglement perturbs v with small Gaussian noise, renormalizes and takes the
// spectral entropy of the result.
func (r *Registry) entanglement(v []float64) float64 {
	w := make([]float64, len(v))
	for i, x := range v {
		w[i] = x + r.noise.Rand()
	}
	w, norm := formulas.Normalize(w)
	if norm == 0 {
		return 0
	}
	return spectralEntropy(w)
}
