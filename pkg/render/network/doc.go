// Package network renders teammate networks using Graphviz.
//
// Each player is a node and each pair of players who shared matches is an
// edge whose thickness grows with the number of shared matches. Layout is
// delegated to Graphviz's neato engine through the embedded WebAssembly
// build of go-graphviz, so no system Graphviz install is needed.
//
//	dot := network.ToDOT(links, network.Options{Focus: "Ana", Theme: theme.Current()})
//	svg, err := network.RenderSVG(ctx, dot)
package network
