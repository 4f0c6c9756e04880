package orchestrator

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-pagegen/pkg/content"
	"github.com/goliatone/go-pagegen/pkg/layout"
	"github.com/goliatone/go-pagegen/pkg/share"
	"github.com/goliatone/go-pagegen/pkg/style"
	"github.com/goliatone/go-pagegen/pkg/vertical"
)

// Session holds the state of one preview across calls: the content model,
// which only grows through hydration, and the vertical, which the caller may
// override. The session id doubles as the default layout seed so repeated
// previews keep their block order. A Session is safe for concurrent use.
type Session struct {
	orch *Orchestrator
	id   string

	mu             sync.Mutex
	input          vertical.Input
	classification vertical.Result
	vertical       vertical.Vertical
	model          content.Model
	preset         string
	seed           string
	layout         layout.Variant
	style          style.Variant
}

// Settings are the presentation choices of a session. Zero fields keep the
// current value.
type Settings struct {
	Preset string
	Seed   string
	Layout layout.Variant
	Style  style.Variant
}

// NewSession classifies the idea and seeds its content model.
func (o *Orchestrator) NewSession(in vertical.Input) *Session {
	id := uuid.NewString()
	explained := vertical.Explain(in)
	s := &Session{
		orch:           o,
		id:             id,
		input:          in,
		classification: explained,
		vertical:       explained.Vertical,
		model:          content.Seed(in.Idea),
		seed:           id,
		layout:         layout.Standard,
		style:          style.Default,
	}
	o.logger.Debug("session started",
		zap.String("session", id),
		zap.String("vertical", string(s.vertical)),
		zap.String("source", string(explained.Source)),
	)
	return s
}

// SessionFromLink restores a session from a decoded share link.
func (o *Orchestrator) SessionFromLink(l share.Link) *Session {
	id := uuid.NewString()
	return &Session{
		orch:           o,
		id:             id,
		classification: vertical.Result{Vertical: l.Vertical, Source: vertical.SourceHint},
		vertical:       l.Vertical,
		model:          l.Content.Clone(),
		preset:         l.Preset,
		seed:           l.Seed,
		layout:         l.Layout,
		style:          l.Style,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Vertical returns the vertical previews currently use.
func (s *Session) Vertical() vertical.Vertical {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vertical
}

// Classification returns the classifier's original verdict.
func (s *Session) Classification() vertical.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.classification
}

// Content returns a copy of the current content model.
func (s *Session) Content() content.Model {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.Clone()
}

// Hydrate merges doc into the session's content model and returns a copy of
// the result.
func (s *Session) Hydrate(doc string, kind content.DocumentKind) content.Model {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.model = content.Hydrate(doc, s.model, kind)
	s.orch.logger.Debug("session hydrated",
		zap.String("session", s.id),
		zap.String("kind", string(kind)),
		zap.Int("features", len(s.model.Features)),
		zap.Int("faq", len(s.model.FAQ)),
		zap.Int("testimonials", len(s.model.Testimonials)),
	)
	return s.model.Clone()
}

// Reclassify switches the session to the vertical v names. Free-form labels
// such as "Real Estate" are normalised; an unknown label leaves the session
// untouched and reports false. On a switch the chosen preset is cleared so the
// next preview starts from the new vertical's default; content is kept.
func (s *Session) Reclassify(v vertical.Vertical) bool {
	parsed, ok := vertical.Parse(string(v))
	if !ok {
		s.orch.logger.Debug("session reclassify rejected",
			zap.String("session", s.id),
			zap.String("label", string(v)),
		)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.vertical == parsed {
		return true
	}
	s.orch.logger.Debug("session reclassified",
		zap.String("session", s.id),
		zap.String("from", string(s.vertical)),
		zap.String("to", string(parsed)),
	)
	s.vertical = parsed
	s.preset = ""
	return true
}

// Configure updates the presentation settings.
func (s *Session) Configure(settings Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if settings.Preset != "" {
		s.preset = settings.Preset
	}
	if settings.Seed != "" {
		s.seed = settings.Seed
	}
	if settings.Layout != "" {
		s.layout = settings.Layout
	}
	if settings.Style != "" {
		s.style = settings.Style
	}
}

// Preview renders the session in format ("" for blocks only).
func (s *Session) Preview(ctx context.Context, format string) (Result, error) {
	req := s.request()
	req.Format = format
	res, err := s.orch.Generate(ctx, req)
	if err != nil {
		return Result{}, err
	}
	res.Classification = s.Classification()
	return res, nil
}

// Link returns the share token of the current session state.
func (s *Session) Link() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return share.Encode(share.Link{
		Vertical: s.vertical,
		Preset:   s.preset,
		Seed:     s.seed,
		Layout:   s.layout,
		Style:    s.style,
		Content:  s.model.Clone(),
	})
}

func (s *Session) request() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.model.Clone()
	return Request{
		Idea:     s.input.Idea,
		Persona:  s.input.Persona,
		Job:      s.input.Job,
		Hint:     s.input.Hint,
		Vertical: s.vertical,
		Content:  &m,
		Preset:   s.preset,
		Seed:     s.seed,
		Layout:   s.layout,
		Style:    s.style,
	}
}
