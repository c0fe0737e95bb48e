package edgelist

import "github.com/katalvlaran/ocegraph/core"

// CoreConstructor builds graphs with the in-memory core engine.
// Options are applied before the directedness flag of each call.
type CoreConstructor struct {
	Options []core.GraphOption
}

// NewCoreConstructor returns a Constructor backed by core.Create.
func NewCoreConstructor(opts ...core.GraphOption) *CoreConstructor {
	return &CoreConstructor{Options: opts}
}

// Create implements Constructor.
func (c *CoreConstructor) Create(edges []int, n int, directed bool) (Handle, error) {
	g, err := core.Create(edges, n, c.options(directed)...)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Empty implements Constructor.
func (c *CoreConstructor) Empty(n int, directed bool) (Handle, error) {
	g, err := core.Empty(n, c.options(directed)...)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (c *CoreConstructor) options(directed bool) []core.GraphOption {
	opts := make([]core.GraphOption, 0, len(c.Options)+1)
	opts = append(opts, c.Options...)
	return append(opts, core.WithDirected(directed))
}
