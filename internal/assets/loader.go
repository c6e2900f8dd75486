package assets

import (
	"context"
	"math"
	"strconv"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/tideline/internal/engine/model"
	"github.com/Faultbox/tideline/internal/logger"
)

// ErrorMessage is shown on the loading display once any model fails.
const ErrorMessage = "Error loading model"

// Placement scales and positions a freshly loaded model.
type Placement func(m *model.Model)

// ShipSize is the largest dimension of the ship after placement.
const ShipSize = 4

// PlaceShip scales the ship to ShipSize, centres it on the origin and
// drops it to the water baseline. The floater sets its height every frame.
func PlaceShip(m *model.Model) {
	m.FitTo(ShipSize)
	m.Transform.Position[1] = 0
	m.Surface = model.Surface{Roughness: 0.5, Metalness: 0.8}
}

// PlaceContainer scales a model to one unit and parks it at pos.
func PlaceContainer(pos mgl32.Vec3) Placement {
	return func(m *model.Model) {
		if m.Mesh != nil {
			if d := m.Mesh.Bounds.MaxDim(); d > 0 {
				m.Transform.Scale = 1 / d
			}
		}
		m.Transform.Position = pos
		m.Surface = model.Surface{Roughness: 0.6, Metalness: 0.7}
	}
}

// Request names one model to load.
type Request struct {
	Name  string
	Path  string
	Place Placement
}

// Progress reports how many requests of a batch have finished.
type Progress struct {
	Loaded int
	Total  int
	// Failed stays set once any request in the batch has failed.
	Failed bool
}

// Percent returns the whole-number share of finished requests.
func (p Progress) Percent() int {
	if p.Total <= 0 {
		return 100
	}
	return int(math.Floor(float64(p.Loaded) / float64(p.Total) * 100))
}

// Done reports whether every request has finished.
func (p Progress) Done() bool {
	return p.Loaded >= p.Total
}

// Status returns the loading display text.
func (p Progress) Status() string {
	if p.Failed {
		return ErrorMessage
	}
	return strconv.Itoa(p.Percent())
}

// Result carries one loaded model, or the reason it could not load.
type Result struct {
	Name  string
	Model *model.Model
	Err   error
}

// Batch delivers the outcome of LoadAsync. Both channels are buffered for
// the whole batch and closed once every request has finished.
type Batch struct {
	Progress <-chan Progress
	Results  <-chan Result
}

// LoadAsync loads every request on its own goroutine. Failed loads are
// reported once and never retried.
func (m *Manager) LoadAsync(ctx context.Context, reqs []Request) *Batch {
	log := logger.Named("assets")
	progress := make(chan Progress, len(reqs))
	results := make(chan Result, len(reqs))

	var (
		mu    sync.Mutex
		state = Progress{Total: len(reqs)}
		wg    sync.WaitGroup
	)

	finish := func(r Result) {
		mu.Lock()
		defer mu.Unlock()
		state.Loaded++
		if r.Err != nil {
			state.Failed = true
		}
		results <- r
		progress <- state
	}

	for _, req := range reqs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := m.loadOne(ctx, req)
			if r.Err != nil {
				log.Error("model load failed", zap.String("name", req.Name), zap.String("path", req.Path), zap.Error(r.Err))
			} else {
				log.Info("model loaded",
					zap.String("name", req.Name),
					zap.Int("vertices", len(r.Model.Mesh.Vertices)),
					zap.Float32("scale", r.Model.Transform.Scale))
			}
			finish(r)
		}()
	}

	go func() {
		wg.Wait()
		close(results)
		close(progress)
	}()

	return &Batch{Progress: progress, Results: results}
}

func (m *Manager) loadOne(ctx context.Context, req Request) Result {
	if err := ctx.Err(); err != nil {
		return Result{Name: req.Name, Err: err}
	}
	mesh, err := m.Load(req.Path)
	if err != nil {
		return Result{Name: req.Name, Err: err}
	}
	mdl := &model.Model{
		Name:      req.Name,
		Mesh:      mesh,
		Transform: model.Transform{Scale: 1},
	}
	if req.Place != nil {
		req.Place(mdl)
	}
	return Result{Name: req.Name, Model: mdl}
}
