package registry

import (
	"sort"
	"strings"

	"github.com/MrSnakeDoc/devhub/internal/errs"
	"github.com/MrSnakeDoc/devhub/internal/source"
	"github.com/MrSnakeDoc/devhub/internal/utils"
)

// Factory builds the manager of one tool.
type Factory func(env source.Env) source.Manager

// builtin is the fixed set of supported tools. New tools are added here.
var builtin = map[string]Factory{
	"pip":    source.NewPip,
	"uv":     source.NewUv,
	"conda":  source.NewConda,
	"npm":    source.NewNpm,
	"yarn":   source.NewYarn,
	"pnpm":   source.NewPnpm,
	"cargo":  source.NewCargo,
	"go":     source.NewGo,
	"maven":  source.NewMaven,
	"gradle": source.NewGradle,
	"docker": source.NewDocker,
	"brew":   source.NewBrew,
	"apt":    source.NewApt,
	"git":    source.NewGit,
}

// maxSuggestionDistance bounds how far a typo may be from a real id.
const maxSuggestionDistance = 2

// Registry maps a lowercase tool identifier to its manager. It is read-only.
type Registry struct {
	env       source.Env
	factories map[string]Factory
	ids       []string
}

func New(env source.Env) *Registry {
	return NewFromFactories(env, builtin)
}

// NewFromFactories builds a registry over an explicit factory set.
func NewFromFactories(env source.Env, factories map[string]Factory) *Registry {
	r := &Registry{env: env, factories: make(map[string]Factory, len(factories))}
	for id, f := range factories {
		r.factories[strings.ToLower(id)] = f
	}
	r.ids = utils.SortedKeys(r.factories)
	return r
}

// Supported returns the tool ids in sorted order.
func (r *Registry) Supported() []string {
	return append([]string(nil), r.ids...)
}

// Get returns the manager for id. Lookup is case-insensitive.
func (r *Registry) Get(id string) (source.Manager, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	f, ok := r.factories[key]
	if !ok {
		return nil, &errs.UnknownToolError{
			Name:       id,
			Suggestion: r.suggest(key),
			Supported:  r.Supported(),
		}
	}
	return f(r.env), nil
}

// All returns one manager per supported tool, in id order.
func (r *Registry) All() []source.Manager {
	out := make([]source.Manager, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.factories[id](r.env))
	}
	return out
}

func (r *Registry) suggest(key string) string {
	if key == "" {
		return ""
	}
	type candidate struct {
		id   string
		dist int
	}
	var best []candidate
	for _, id := range r.ids {
		d := editDistance(key, id)
		if strings.HasPrefix(id, key) || strings.HasPrefix(key, id) {
			d = min(d, 1)
		}
		if d <= maxSuggestionDistance {
			best = append(best, candidate{id, d})
		}
	}
	if len(best) == 0 {
		return ""
	}
	sort.SliceStable(best, func(i, j int) bool { return best[i].dist < best[j].dist })
	return best[0].id
}

// editDistance is the optimal string alignment distance: insertions,
// deletions, substitutions and adjacent transpositions all cost 1.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	d := make([][]int, len(ra)+1)
	for i := range d {
		d[i] = make([]int, len(rb)+1)
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				d[i][j] = min(d[i][j], d[i-2][j-2]+1)
			}
		}
	}
	return d[len(ra)][len(rb)]
}
