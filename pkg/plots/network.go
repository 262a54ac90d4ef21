package plots

import (
	"github.com/matzehuels/seasonviz/pkg/dataset"
	"github.com/matzehuels/seasonviz/pkg/errors"
	"github.com/matzehuels/seasonviz/pkg/render/network"
)

// TeammateNetwork returns the Graphviz DOT source of the shared-match
// network around player.
func TeammateNetwork(links []dataset.Pairing, player string) (string, error) {
	if len(links) == 0 {
		return "", errors.NoData("The player %s has no recorded teammates.", player)
	}
	out := make([]network.Link, len(links))
	for i, l := range links {
		out[i] = network.Link{A: l.A, B: l.B, Matches: l.Matches}
	}
	return network.ToDOT(out, network.Options{
		Title: "Teammate Network of " + player,
		Focus: player,
		Theme: current(),
	}), nil
}
