package problemgen

import (
	"github.com/abhisek/smarty/internal/pick"
)

// Generator builds tasks from an injected random source. IDs increase
// strictly per generator. A Generator is owned by one session and is not
// safe for concurrent use.
type Generator struct {
	src    pick.Source
	cfg    Config
	nextID int
}

// New creates a Generator.
func New(src pick.Source, cfg Config) *Generator {
	return &Generator{src: src, cfg: cfg}
}

func (g *Generator) newID() int {
	g.nextID++
	return g.nextID
}

// validate runs the configured validators on t.
func (g *Generator) validate(t *Task) *ValidationError {
	for _, v := range g.cfg.Validators {
		if err := v.Validate(t); err != nil {
			return err
		}
	}
	return nil
}

// withOptions shuffles correct and wrong into a fresh slice.
func (g *Generator) withOptions(correct string, wrong []string) []string {
	opts := append([]string{correct}, wrong...)
	pick.Shuffle(g.src, opts)
	return opts
}
