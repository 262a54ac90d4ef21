// Package plots builds every chart of the league season report.
//
// Each exported function takes prepared inputs from [dataset] and returns a
// [chart.Figure] with the report's fixed house style: palette, font sizes,
// bar widths and axis limits are part of each chart. Nothing is computed
// here beyond the ordering and filtering a chart needs.
//
// Two charts dispatch on which inputs are present. When nothing is left to
// draw they return a NO_DATA error whose message is the text to show in
// place of the chart:
//
//	fig, err := plots.PlayerBestPerformance(scorer, assist, "Hugo", false, false)
//	if errors.Is(err, errors.ErrCodeNoData) {
//	    fmt.Println(errors.UserMessage(err)) // The player Hugo did not score any goals or assists.
//	}
//
// [Lookup] maps chart names to builders so the CLI and HTTP server can
// render any chart from a whole [dataset.Season].
//
// [dataset]: github.com/matzehuels/seasonviz/pkg/dataset
// [dataset.Season]: github.com/matzehuels/seasonviz/pkg/dataset#Season
// [chart.Figure]: github.com/matzehuels/seasonviz/pkg/chart#Figure
package plots
